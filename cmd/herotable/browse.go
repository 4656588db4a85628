package main

import (
	"os"

	"github.com/rivo/tview"
	"github.com/spf13/cobra"

	"github.com/ersonp/herotable/internal/application/handlers"
	"github.com/ersonp/herotable/internal/domain/entities"
	"github.com/ersonp/herotable/internal/infrastructure/render/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive hero table",
		Long: `Opens a full-screen table of heroes.

Keys: / search by name, s page size, n/p next and previous page,
enter on a header sorts by that column, q quits. Logs go to the configured
log file, or to herotable.log in the temp directory.`,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if err := requireTerminal("browse"); err != nil {
		return err
	}

	ctx := cmd.Context()

	return withDepsOptions(depsOptions{logFile: browseLogFile()}, func(d *Deps) error {
		var (
			handler *handlers.TableHandler
			browser *tui.Browser
		)

		dispatch := func(ev handlers.Event) {
			if err := handler.Handle(ctx, ev); err != nil {
				d.Logger.Error("handling event failed", "event", ev, "error", err)
				browser.SetStatus("[red]" + tview.Escape(err.Error()))
			}
		}

		browser = tui.NewBrowser(d.PageSize, tui.Callbacks{
			OnPage:     func(page int) { dispatch(handlers.PageSelected{Page: page}) },
			OnPageSize: func(size entities.PageSize) { dispatch(handlers.PageSizeChanged{Size: size}) },
			OnQuery:    func(query string) { dispatch(handlers.QueryChanged{Query: query}) },
			OnHeader:   func(header string) { dispatch(handlers.HeaderActivated{Header: header}) },
			OnError: func(err error) {
				d.Logger.Warn("invalid input", "error", err)
			},
		})

		handler = handlers.NewTableHandler(d.Source, browser, d.Logger, handlers.TableOptions{
			PageSize:     d.PageSize,
			SearchColumn: d.SearchColumn,
		})

		browser.SetStatus("Loading heroes from " + tview.Escape(d.SourceEntry.Location()) + " ...")

		go func() {
			records, err := d.Source.Fetch(ctx)
			browser.QueueUpdate(func() {
				if err := handler.Accept(ctx, records, err); err != nil {
					browser.SetStatus("[red]" + tview.Escape(err.Error()) + "[-] | q quit")
				}
			})
		}()

		go func() {
			<-ctx.Done()
			browser.Stop()
		}()

		d.Logger.Info("browser started", "pid", os.Getpid())
		return browser.Run()
	})
}
