package adapters

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"pkgmanifest/internal/ports"
	"pkgmanifest/internal/types"
)

// ManifestFileAdapter reads manifest documents from disk. JSON documents
// are accepted since they are valid YAML; .json and .jsonc files may also
// carry comments and trailing commas. Unknown keys are rejected.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) LoadDocument(path string) (types.ManifestDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ManifestDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}
	var doc types.ManifestDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return types.ManifestDocument{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("manifest file is empty")
		}
		return types.ManifestDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest yaml").
			WithCause(err)
	}
	return doc, nil
}

var _ ports.ManifestSourcePort = ManifestFileAdapter{}
