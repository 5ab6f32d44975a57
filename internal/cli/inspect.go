package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkgmanifest/internal/app"
)

type inspectOptions struct {
	Manifest string
	Lock     string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show build order, products and dependencies of a manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.Lock, "lock", "", "Lock file path (optional)")
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		LockPath:     resolveString(cmd, opts.Lock, "lock", "lock"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "package: %s\n", result.PackageName)
	if result.ToolsVersion != "" {
		fmt.Fprintf(out, "tools version: %s\n", result.ToolsVersion)
	}
	fmt.Fprintln(out, "build order:")
	for i, target := range result.BuildOrder {
		fmt.Fprintf(out, "%d. %s (%s)", i+1, target.Name, target.Kind)
		if len(target.DependsOn) > 0 {
			fmt.Fprintf(out, " <- %s", strings.Join(target.DependsOn, ", "))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "products:")
	for _, product := range result.Products {
		fmt.Fprintf(out, "- %s (%s): %s\n", product.Name, product.Kind, strings.Join(product.Targets, ", "))
	}
	fmt.Fprintln(out, "dependencies:")
	for _, dep := range result.Dependencies {
		fmt.Fprintf(out, "- %s %s", dep.Identity, dep.Constraint)
		if dep.Locked != "" {
			fmt.Fprintf(out, " (locked %s)", dep.Locked)
		}
		fmt.Fprintf(out, " [%s]\n", dep.Location)
	}
	return nil
}
