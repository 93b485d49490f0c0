package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mrp-access/internal/app"
	"mrp-access/internal/db/memstore"
	"mrp-access/internal/declarative"
)

func newDirectoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Validate and plan principal/group directories",
	}
	cmd.AddCommand(newDirectoryValidateCmd())
	cmd.AddCommand(newDirectoryPlanCmd())
	return cmd
}

func newDirectoryValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a directory file offline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := declarative.LoadFile(file)
			if err != nil {
				if getOutputFormat(cmd) == "json" {
					if perr := printJSON(cmd.OutOrStdout(), map[string]any{"valid": false, "error": err.Error()}); perr != nil {
						return perr
					}
					return &exitError{code: 1}
				}
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"valid":      true,
					"principals": len(d.Principals),
					"groups":     len(d.Groups),
				})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Directory is valid: %d principals, %d groups.\n",
				len(d.Principals), len(d.Groups))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to directory YAML")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newDirectoryPlanCmd() *cobra.Command {
	var (
		file    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what a directory file adds on top of the built-in groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			d, err := declarative.LoadFile(file)
			if err != nil {
				return err
			}
			store := memstore.New()
			if _, err := app.Seed(ctx, "", store.Principals(), store.Groups()); err != nil {
				return err
			}
			plan, err := declarative.Diff(ctx, d, store.Principals(), store.Groups())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return declarative.FormatJSON(cmd.OutOrStdout(), plan)
			}
			declarative.FormatText(cmd.OutOrStdout(), plan, noColor)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to directory YAML")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// loadDirectoryStore builds an in-memory store holding the built-in groups
// plus everything declared in file.
func loadDirectoryStore(ctx context.Context, file string) (*memstore.Store, error) {
	d, err := declarative.LoadFile(file)
	if err != nil {
		return nil, err
	}
	store := memstore.New()
	if _, err := app.Seed(ctx, "", store.Principals(), store.Groups()); err != nil {
		return nil, err
	}
	if _, err := declarative.Sync(ctx, d, store.Principals(), store.Groups()); err != nil {
		return nil, err
	}
	return store, nil
}
