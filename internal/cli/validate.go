package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pkgmanifest/internal/app"
	"pkgmanifest/internal/shared"
)

type validateOptions struct {
	Manifest  string
	Workspace string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a package manifest or every manifest in a workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.Workspace, "workspace", "", "Workspace root to scan for manifests")
	cmd.MarkFlagsMutuallyExclusive("manifest", "workspace")
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	// An explicit --manifest wins over a workspace from config or environment.
	if !flagChanged(cmd, "manifest") {
		if workspace := resolveString(cmd, opts.Workspace, "workspace", "workspace"); workspace != "" {
			return runValidateWorkspace(ctx, cmd, service, workspace)
		}
	}
	result, err := service.Validate(ctx, app.ValidateRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "validated: %s (%d targets, %d products)\n", result.PackageName, result.Targets, result.Products)
	return nil
}

func runValidateWorkspace(ctx context.Context, cmd *cobra.Command, service app.Service, root string) error {
	result, err := service.ValidateWorkspace(ctx, app.ValidateWorkspaceRequest{Root: root})
	out := cmd.OutOrStdout()
	for _, entry := range result.Manifests {
		if entry.Err != nil {
			fmt.Fprintf(out, "FAIL %s: %s\n", entry.Path, shared.ErrorMessage(entry.Err))
			continue
		}
		fmt.Fprintf(out, "ok   %s: %s\n", entry.Path, entry.PackageName)
	}
	return err
}
