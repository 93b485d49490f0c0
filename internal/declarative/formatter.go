package declarative

import (
	"encoding/json"
	"fmt"
	"io"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// FormatText writes a human-readable plan to w.
// If noColor is true, ANSI codes are suppressed.
func FormatText(w io.Writer, plan *Plan, noColor bool) {
	c := func(code string) string {
		if noColor {
			return ""
		}
		return code
	}

	if !plan.HasChanges() {
		fmt.Fprintln(w, "No changes. Directory is up-to-date.")
		return
	}

	for _, a := range plan.Actions {
		switch a.Operation {
		case OpCreate:
			fmt.Fprintf(w, "  %s+%s %s %q will be created\n",
				c(colorGreen), c(colorReset), a.ResourceKind, a.ResourceName)
		case OpUpdate:
			fmt.Fprintf(w, "  %s~%s %s %q will be updated\n",
				c(colorYellow), c(colorReset), a.ResourceKind, a.ResourceName)
			for _, d := range a.Changes {
				fmt.Fprintf(w, "      %s: %q -> %q\n", d.Field, d.OldValue, d.NewValue)
			}
		}
	}

	s := plan.Summary()
	fmt.Fprintf(w, "\n%sPlan:%s %d to create, %d to update.\n",
		c(colorDim), c(colorReset), s.Creates, s.Updates)
}

type jsonAction struct {
	Operation    string      `json:"operation"`
	ResourceType string      `json:"resource_type"`
	ResourceName string      `json:"resource_name"`
	Changes      []FieldDiff `json:"changes,omitempty"`
}

type jsonPlan struct {
	Actions []jsonAction `json:"actions"`
	Summary PlanSummary  `json:"summary"`
}

// FormatJSON writes the plan as indented JSON to w.
func FormatJSON(w io.Writer, plan *Plan) error {
	out := jsonPlan{Actions: make([]jsonAction, 0, len(plan.Actions)), Summary: plan.Summary()}
	for _, a := range plan.Actions {
		out.Actions = append(out.Actions, jsonAction{
			Operation:    a.Operation.String(),
			ResourceType: a.ResourceKind.String(),
			ResourceName: a.ResourceName,
			Changes:      a.Changes,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
