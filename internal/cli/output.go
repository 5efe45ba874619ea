// filepath: internal/cli/output.go
package cli

import (
	"encoding/json"
	"fmt"
	"gamelog/internal/models"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// printer renders command results as a table on a terminal and as JSON otherwise.
type printer struct {
	out  io.Writer
	json bool
}

func newPrinter(cmd *cobra.Command, options *GlobalOptions) *printer {
	out := cmd.OutOrStdout()
	return &printer{out: out, json: options.JSON || !isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// print writes v as indented JSON, or calls table with a tab-aligned writer.
func (p *printer) print(v interface{}, table func(w io.Writer)) error {
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func (p *printer) logs(entries []models.LogEntry) error {
	return p.print(entries, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tDATE\tGAME\tSTATUS\tMINUTES\tRATING")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n", e.ID, e.Date, e.Game.Title, e.Status, e.MinutesPlayed, e.Rating)
		}
	})
}

func (p *printer) log(e models.LogEntry) error {
	return p.print(e, func(w io.Writer) {
		fmt.Fprintf(w, "ID\t%d\n", e.ID)
		fmt.Fprintf(w, "Game\t%s (%d)\n", e.Game.Title, e.Game.ID)
		fmt.Fprintf(w, "Date\t%s\n", e.Date)
		fmt.Fprintf(w, "Status\t%s\n", e.Status)
		fmt.Fprintf(w, "Played\t%dh %02dm\n", e.MinutesPlayed/60, e.MinutesPlayed%60)
		fmt.Fprintf(w, "Rating\t%d/10\n", e.Rating)
		if e.Notes != "" {
			fmt.Fprintf(w, "Notes\t%s\n", e.Notes)
		}
		fmt.Fprintf(w, "Created\t%s\n", e.CreatedAt)
		fmt.Fprintf(w, "Updated\t%s\n", e.UpdatedAt)
	})
}

// id reports the id a mutation affected.
func (p *printer) id(action string, id int64) error {
	return p.print(map[string]interface{}{"action": action, "id": id}, func(w io.Writer) {
		fmt.Fprintf(w, "%s\t%d\n", strings.ToUpper(action[:1])+action[1:], id)
	})
}
