package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/returns"
)

// DiagnosticsOptions selects the account lists to render.
type DiagnosticsOptions struct {
	Inflows  bool
	Outflows bool
	Internal bool
}

// DiagnosticsMarkdown renders the accounts seen while extracting cashflows.
//
// Empty lists are not rendered.
func DiagnosticsMarkdown(d returns.Diagnostics, opts DiagnosticsOptions) string {
	var b strings.Builder
	list := func(selected bool, title string, accounts []string) {
		ConditionalBlock(&b, func(w io.Writer) bool {
			fmt.Fprintf(w, "## %s\n\n", title)
			for _, a := range accounts {
				fmt.Fprintf(w, "* %s\n", a)
			}
			fmt.Fprintln(w)
			return selected && len(accounts) > 0
		})
	}
	list(opts.Inflows, "Inflow accounts", d.Inflows)
	list(opts.Outflows, "Outflow accounts", d.Outflows)
	list(opts.Internal, "Internal accounts", d.Internal)
	return b.String()
}
