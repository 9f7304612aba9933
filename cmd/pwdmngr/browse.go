package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/ui"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/search"
)

const browseHelp = "[n]ext  [p]rev  /<term> search  [c]lear  <number> details  [q]uit"

func (a *app) browseCmd() *cobra.Command {
	var term string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through and search saved passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.unlock(cmd.Context())
			if err != nil {
				return err
			}

			p := search.NewPaginator(a.vault, key)
			var view *search.View
			run := func(q search.Query) {
				ctx, cancel := a.remoteContext(cmd)
				defer cancel()
				next, err := p.Execute(ctx, q)
				if err != nil {
					a.notifier.Error(err)
					return
				}
				if next != nil {
					view = next
					ui.RenderView(a.out, view)
				}
			}

			run(p.Load())
			if term != "" {
				if q, ok := p.SubmitSearch(term); ok {
					run(q)
				}
			}

			for {
				ui.PrintMuted(a.out, browseHelp)
				line, err := a.readLine()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				var (
					q  search.Query
					ok bool
				)
				line = strings.TrimSpace(line)
				switch {
				case line == "q":
					return nil
				case line == "n":
					q, ok = p.Navigate(search.Next)
				case line == "p":
					q, ok = p.Navigate(search.Prev)
				case line == "c":
					q, ok = p.TermChanged("")
				case strings.HasPrefix(line, "/"):
					q, ok = p.SubmitSearch(line[1:])
				default:
					a.printRow(view, line)
					continue
				}
				if ok {
					run(q)
				}
			}
		},
	}
	cmd.Flags().StringVarP(&term, "search", "s", "", "start with a search")
	return cmd
}

// printRow shows the ID of the n-th row of the current page
func (a *app) printRow(view *search.View, line string) {
	n, err := strconv.Atoi(line)
	if err != nil || view == nil || n < 1 || n > len(view.Rows) {
		ui.PrintWarning(a.out, "Unknown command")
		return
	}
	row := view.Rows[n-1]
	fmt.Fprintf(a.out, "%s  id: %s\n", row.Record.Website, row.Record.ID)
	if row.Record.Undecryptable() {
		ui.PrintWarning(a.out, "This entry could not be decrypted.")
	}
}
