package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mrp-access/internal/domain"
	"mrp-access/internal/policy"
)

func newPolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect and validate access policies",
	}
	cmd.AddCommand(newPolicyValidateCmd())
	cmd.AddCommand(newPolicyShowCmd())
	return cmd
}

func newPolicyValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a policy file offline",
		Long:  "Loads a policy YAML file with the same checks the server applies at startup.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := policy.Load(file)
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
					"valid":    true,
					"entities": len(table.Entities()),
					"rules":    len(table.Rules()),
				})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Policy is valid: %d entities, %d rules.\n",
				len(table.Entities()), len(table.Rules()))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to policy YAML")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newPolicyShowCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective policy table",
		Long:  "Prints the required groups for every entity and operation. Without --file the built-in policy is shown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := policy.LoadOrDefault(file)
			if err != nil {
				return err
			}

			type row struct {
				Entity    string   `json:"entity"`
				Operation string   `json:"operation"`
				Groups    []string `json:"groups"`
			}
			var rows []row
			for _, e := range table.Entities() {
				for _, op := range domain.Operations {
					rows = append(rows, row{Entity: string(e), Operation: string(op), Groups: table.Required(e, op)})
				}
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ENTITY\tOPERATION\tGROUPS")
			for _, r := range rows {
				groups := strings.Join(r.Groups, ",")
				if groups == "" {
					groups = "-"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Entity, r.Operation, groups)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to policy YAML (default: built-in policy)")
	return cmd
}
