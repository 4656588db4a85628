// Package tui provides the interactive terminal table built on tview.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// Callbacks receives the user's interactions. Each callback runs on the
// tview event goroutine and is expected to re-render through Render.
type Callbacks struct {
	OnPage     func(page int)
	OnPageSize func(size entities.PageSize)
	OnQuery    func(query string)
	OnHeader   func(header string)
	OnError    func(err error)
}

// Browser is the interactive hero table. It implements ports.Renderer;
// Render must be called on the tview event goroutine (from a callback or
// through QueueUpdateDraw).
type Browser struct {
	app    *tview.Application
	root   *tview.Flex
	table  *tview.Table
	search *tview.InputField
	sizes  *tview.DropDown
	pager  *tview.TextView
	status *tview.TextView

	callbacks Callbacks
	view      entities.View
	// choices backs the page-size dropdown options.
	choices []entities.PageSize
	// suppress is set while Render updates widgets, so their change
	// callbacks do not echo back as user events.
	suppress bool
}

// NewBrowser builds the layout. initialSize preselects the page-size dropdown.
func NewBrowser(initialSize entities.PageSize, cb Callbacks) *Browser {
	b := &Browser{
		app:       tview.NewApplication(),
		callbacks: cb,
	}

	b.table = tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, true).
		SetSeparator(tview.Borders.Vertical)
	b.table.SetBorder(true).SetTitle(" Heroes ")
	b.table.SetSelectedFunc(b.cellSelected)

	b.search = tview.NewInputField().
		SetLabel("Search: ").
		SetFieldWidth(30)
	b.search.SetChangedFunc(func(text string) {
		if !b.suppress && b.callbacks.OnQuery != nil {
			b.callbacks.OnQuery(text)
		}
	})
	b.search.SetDoneFunc(func(tcell.Key) {
		b.app.SetFocus(b.table)
	})

	b.sizes = tview.NewDropDown().SetLabel("  Page size: ")
	b.suppress = true
	b.selectSize(initialSize)
	b.suppress = false

	b.pager = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetTextAlign(tview.AlignCenter)
	b.pager.SetHighlightedFunc(b.pageHighlighted)

	b.status = tview.NewTextView().SetDynamicColors(true)

	controls := tview.NewFlex().
		AddItem(b.search, 0, 2, false).
		AddItem(b.sizes, 20, 0, false)

	b.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(controls, 1, 0, false).
		AddItem(b.table, 0, 1, true).
		AddItem(b.pager, 1, 0, false).
		AddItem(b.status, 1, 0, false)

	b.app.SetRoot(b.root, true).EnableMouse(true)
	b.app.SetInputCapture(b.handleKey)

	return b
}

// App returns the underlying tview application.
func (b *Browser) App() *tview.Application {
	return b.app
}

// Run starts the event loop and blocks until Stop is called.
func (b *Browser) Run() error {
	return b.app.Run()
}

// Stop ends the event loop.
func (b *Browser) Stop() {
	b.app.Stop()
}

// QueueUpdate runs fn on the event goroutine and redraws afterwards.
func (b *Browser) QueueUpdate(fn func()) {
	b.app.QueueUpdateDraw(fn)
}

// SetStatus shows a message in the status line.
func (b *Browser) SetStatus(msg string) {
	b.status.SetText(msg)
}

// Render redraws the table, pager and status line from view.
func (b *Browser) Render(ctx context.Context, view entities.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.suppress = true
	defer func() { b.suppress = false }()

	b.view = view
	b.fillTable(view)
	b.pager.SetText(PagerText(view.Pages))
	b.pager.Highlight(pageRegion(view.CurrentPage))
	b.status.SetText(StatusText(view))

	if b.search.GetText() != view.Query {
		b.search.SetText(view.Query)
	}
	b.selectSize(view.PageSize)
	return nil
}

// selectSize points the dropdown at size, adding it as an option when the
// standard choices do not offer it.
func (b *Browser) selectSize(size entities.PageSize) {
	i := slices.Index(b.choices, size)
	if i < 0 {
		b.choices = entities.PageSizeChoicesWith(size)
		labels := make([]string, len(b.choices))
		for j, c := range b.choices {
			labels[j] = c.String()
		}
		b.sizes.SetOptions(labels, b.sizeSelected)
		i = slices.Index(b.choices, size)
	}
	if i < 0 {
		i = slices.Index(b.choices, entities.DefaultPageSize)
	}
	if cur, _ := b.sizes.GetCurrentOption(); cur != i {
		b.sizes.SetCurrentOption(i)
	}
}

func (b *Browser) fillTable(view entities.View) {
	b.table.Clear()

	for col, header := range view.Columns {
		label := header
		if view.LastSort != nil && string(view.LastSort.Column) == header {
			label += sortArrow(view.LastSort.Order)
		}
		b.table.SetCell(0, col, tview.NewTableCell(label).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetReference(header))
	}

	row := 1
	for _, r := range view.Rows {
		if !r.Visible {
			continue
		}
		for col, cell := range r.Cells {
			b.table.SetCell(row, col, tview.NewTableCell(tview.Escape(entities.FlattenCell(cell))).
				SetMaxWidth(32).
				SetReference(r.Record.ID))
		}
		row++
	}

	b.table.ScrollToBeginning()
}

func (b *Browser) cellSelected(row, col int) {
	if row != 0 || b.callbacks.OnHeader == nil {
		return
	}
	if header, ok := b.table.GetCell(row, col).GetReference().(string); ok {
		b.callbacks.OnHeader(header)
		b.table.Select(0, col)
	}
}

func (b *Browser) sizeSelected(text string, _ int) {
	if b.suppress || b.callbacks.OnPageSize == nil {
		return
	}
	size, err := entities.ParsePageSize(text)
	if err != nil {
		b.fail(err)
		return
	}
	b.callbacks.OnPageSize(size)
	b.app.SetFocus(b.table)
}

func (b *Browser) pageHighlighted(added, _, _ []string) {
	if b.suppress || len(added) == 0 || b.callbacks.OnPage == nil {
		return
	}
	page, ok := parsePageRegion(added[0])
	if !ok || page == b.view.CurrentPage {
		return
	}
	b.callbacks.OnPage(page)
}

func (b *Browser) selectPage(page int) {
	if b.callbacks.OnPage == nil || page < 1 || page > b.view.TotalPages {
		return
	}
	b.callbacks.OnPage(page)
}

func (b *Browser) fail(err error) {
	b.status.SetText("[red]" + tview.Escape(err.Error()))
	if b.callbacks.OnError != nil {
		b.callbacks.OnError(err)
	}
}

// handleKey implements the global shortcuts. Keys typed into the search
// field pass through untouched.
func (b *Browser) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if b.app.GetFocus() == b.search {
		if event.Key() == tcell.KeyEscape {
			b.app.SetFocus(b.table)
			return nil
		}
		return event
	}

	switch event.Key() {
	case tcell.KeyCtrlC:
		b.app.Stop()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch event.Rune() {
	case 'q':
		b.app.Stop()
	case '/':
		b.app.SetFocus(b.search)
	case 's':
		b.app.SetFocus(b.sizes)
	case 'n', ']':
		b.selectPage(b.view.CurrentPage + 1)
	case 'p', '[':
		b.selectPage(b.view.CurrentPage - 1)
	default:
		return event
	}
	return nil
}

// PagerText renders the page selector with one clickable region per page.
func PagerText(pages []entities.PageLink) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, `["%s"] %d [""]`, pageRegion(p.Number), p.Number)
	}
	return b.String()
}

// StatusText summarizes the view and lists the key bindings.
func StatusText(view entities.View) string {
	shown := len(view.VisibleRows())
	msg := fmt.Sprintf("%d of %d heroes | page %d/%d", shown, view.Total, view.CurrentPage, view.TotalPages)
	if view.LastSort != nil {
		msg += fmt.Sprintf(" | %s %s", view.LastSort.Column, view.LastSort.Order)
	}
	return msg + " | [::d]/ search  s size  n/p page  enter on header sorts  q quit"
}

func sortArrow(o entities.SortOrder) string {
	if o == entities.Descending {
		return " ▼"
	}
	return " ▲"
}

func pageRegion(n int) string {
	return "page-" + strconv.Itoa(n)
}

func parsePageRegion(id string) (int, bool) {
	s, ok := strings.CutPrefix(id, "page-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
