package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mrp-access/internal/app"
	"mrp-access/internal/domain"
	"mrp-access/internal/policy"
	"mrp-access/internal/service/security"
)

func newCheckCmd() *cobra.Command {
	var (
		directory  string
		principal  string
		entity     string
		op         string
		policyFile string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Decide whether a principal may perform an operation",
		Long: `Loads the directory file into an in-memory store on top of the built-in
groups, resolves the principal's groups and evaluates the policy. Exits 1 when
access is denied.`,
		Example: `  gatectl check --directory dir.yaml --principal public --entity manufacturing_order --op create`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			operation, err := domain.ParseOperation(op)
			if err != nil {
				return err
			}
			table, err := policy.LoadOrDefault(policyFile)
			if err != nil {
				return err
			}
			store, err := loadDirectoryStore(ctx, directory)
			if err != nil {
				return err
			}
			missing, err := app.MissingPolicyGroups(ctx, table, store.Groups())
			if err != nil {
				return err
			}
			for _, name := range missing {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: policy group %q is not in the directory\n", name)
			}

			actor, err := security.NewResolver(store.Principals(), store.Groups()).Resolve(ctx, principal)
			if err != nil {
				return err
			}
			d := security.NewAccessGate(table).Explain(actor, domain.EntityType(entity), operation)

			if getOutputFormat(cmd) == "json" {
				if err := printJSON(cmd.OutOrStdout(), map[string]any{
					"principal":       d.Principal,
					"entity_type":     d.EntityType,
					"operation":       d.Operation,
					"allowed":         d.Allowed,
					"required_groups": nonNil(d.RequiredGroups),
					"matched_groups":  nonNil(d.MatchedGroups),
					"actor_groups":    actor.Groups.Names(),
				}); err != nil {
					return err
				}
			} else {
				verdict := "DENIED"
				if d.Allowed {
					verdict = "ALLOWED"
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "%s: %s %s %s\n", verdict, d.Principal, d.Operation, d.EntityType)
				_, _ = fmt.Fprintf(out, "  principal groups: %s\n", listOrDash(actor.Groups.Names()))
				_, _ = fmt.Fprintf(out, "  required groups:  %s\n", listOrDash(d.RequiredGroups))
				_, _ = fmt.Fprintf(out, "  matched groups:   %s\n", listOrDash(d.MatchedGroups))
			}
			if !d.Allowed {
				return &exitError{code: 1}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&directory, "directory", "", "Path to directory YAML")
	cmd.Flags().StringVar(&principal, "principal", "", "Principal name")
	cmd.Flags().StringVar(&entity, "entity", "", "Entity type, e.g. manufacturing_order")
	cmd.Flags().StringVar(&op, "op", "", "Operation: create|read|update|delete")
	cmd.Flags().StringVar(&policyFile, "policy", "", "Path to policy YAML (default: built-in policy)")
	for _, f := range []string{"directory", "principal", "entity", "op"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
