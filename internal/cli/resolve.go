package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pkgmanifest/internal/app"
)

type resolveOptions struct {
	Manifest  string
	RepoIndex string
	OutputDir string
	SBOM      bool
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:     "resolve",
		Aliases: []string{"lock"},
		Short:   "Resolve dependency constraints and write a lock file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.RepoIndex, "repo-index", "", "Repository index file")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().BoolVar(&opts.SBOM, "sbom", false, "Also write an SPDX SBOM of the pinned dependencies")
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		RepoIndex:    resolveString(cmd, opts.RepoIndex, "repo_index", "repo-index"),
		OutputDir:    resolveString(cmd, opts.OutputDir, "output", "output"),
		WriteSBOM:    resolveBool(cmd, opts.SBOM, "sbom", "sbom"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, pin := range result.Pins {
		fmt.Fprintf(out, "- %s %s\n", pin.Identity, pin.Version)
	}
	fmt.Fprintf(out, "resolved: %s -> %s\n", result.PackageName, result.LockPath)
	if result.SBOMPath != "" {
		fmt.Fprintf(out, "sbom: %s\n", result.SBOMPath)
	}
	return nil
}
