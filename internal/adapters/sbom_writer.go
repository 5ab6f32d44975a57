package adapters

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgmanifest/internal/ports"
	"pkgmanifest/internal/types"
)

const (
	SBOMFileName         = "manifest.sbom.json"
	DefaultSBOMNamespace = "https://pkgmanifest.dev/spdx"
)

type SBOMWriterAdapter struct {
	Namespace string
}

func NewSBOMWriterAdapter() SBOMWriterAdapter {
	return SBOMWriterAdapter{Namespace: DefaultSBOMNamespace}
}

type spdxCreationInfo struct {
	Created  string   `json:"created"`
	Creators []string `json:"creators"`
}

type spdxPackage struct {
	SPDXID           string `json:"SPDXID"`
	Name             string `json:"name"`
	VersionInfo      string `json:"versionInfo,omitempty"`
	DownloadLocation string `json:"downloadLocation"`
	LicenseConcluded string `json:"licenseConcluded"`
	LicenseDeclared  string `json:"licenseDeclared"`
	Supplier         string `json:"supplier"`
}

type spdxRelationship struct {
	SpdxElementID      string `json:"spdxElementId"`
	RelationshipType   string `json:"relationshipType"`
	RelatedSpdxElement string `json:"relatedSpdxElement"`
}

type spdxDocument struct {
	SPDXVersion       string             `json:"SPDXVersion"`
	DataLicense       string             `json:"dataLicense"`
	SPDXID            string             `json:"SPDXID"`
	Name              string             `json:"name"`
	DocumentNamespace string             `json:"documentNamespace"`
	CreationInfo      spdxCreationInfo   `json:"creationInfo"`
	Packages          []spdxPackage      `json:"packages"`
	Relationships     []spdxRelationship `json:"relationships"`
	DocumentDescribes []string           `json:"documentDescribes"`
}

// WriteSBOM writes an SPDX 2.3 document describing the locked package:
// the root package DEPENDS_ON every pin, in lock order.
func (a SBOMWriterAdapter) WriteSBOM(path string, lock types.LockFile, createdAt time.Time) error {
	if strings.TrimSpace(lock.Package) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sbom requires a package name")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create sbom directory").
			WithCause(err)
	}
	namespace := strings.TrimRight(a.Namespace, "/")
	if namespace == "" {
		namespace = DefaultSBOMNamespace
	}
	rootID := spdxPackageID(lock.Package, "")
	doc := spdxDocument{
		SPDXVersion:       "SPDX-2.3",
		DataLicense:       "CC0-1.0",
		SPDXID:            "SPDXRef-DOCUMENT",
		Name:              fmt.Sprintf("pkgmanifest lock %s", lock.Package),
		DocumentNamespace: fmt.Sprintf("%s/%s/%s", namespace, lock.Package, lockDigest(lock)),
		CreationInfo: spdxCreationInfo{
			Created:  createdAt.UTC().Format(time.RFC3339),
			Creators: []string{"Tool: pkgmanifest"},
		},
		Packages: []spdxPackage{noAssertionPackage(rootID, lock.Package, "", "NOASSERTION")},
		Relationships: []spdxRelationship{
			{SpdxElementID: "SPDXRef-DOCUMENT", RelationshipType: "DESCRIBES", RelatedSpdxElement: rootID},
		},
		DocumentDescribes: []string{rootID},
	}
	for _, pin := range lock.Pins {
		pinID := spdxPackageID(pin.Identity, pin.Version)
		location := pin.Location
		if location == "" {
			location = "NOASSERTION"
		}
		doc.Packages = append(doc.Packages, noAssertionPackage(pinID, pin.Identity, pin.Version, location))
		doc.Relationships = append(doc.Relationships, spdxRelationship{
			SpdxElementID:      rootID,
			RelationshipType:   "DEPENDS_ON",
			RelatedSpdxElement: pinID,
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal sbom payload").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write sbom file").
			WithCause(err)
	}
	return nil
}

func noAssertionPackage(id string, name string, version string, location string) spdxPackage {
	return spdxPackage{
		SPDXID:           id,
		Name:             name,
		VersionInfo:      version,
		DownloadLocation: location,
		LicenseConcluded: "NOASSERTION",
		LicenseDeclared:  "NOASSERTION",
		Supplier:         "NOASSERTION",
	}
}

func spdxPackageID(name string, version string) string {
	seed := fmt.Sprintf("%s@%s", name, version)
	hash := sha256.Sum256([]byte(seed))
	return "SPDXRef-Package-" + hex.EncodeToString(hash[:8])
}

// lockDigest identifies the pin set so identical locks share a namespace.
func lockDigest(lock types.LockFile) string {
	hash := sha256.New()
	for _, pin := range lock.Pins {
		fmt.Fprintf(hash, "%s@%s\n", pin.Identity, pin.Version)
	}
	return hex.EncodeToString(hash.Sum(nil)[:8])
}

var _ ports.SBOMPort = SBOMWriterAdapter{}
