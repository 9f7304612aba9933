package search

import (
	"context"
	"sync"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/logger"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/remote"
)

// UndecryptableText is shown in place of a field that failed to decrypt.
const UndecryptableText = "[could not decrypt]"

// Query is an issued request tagged with its sequence number.
type Query struct {
	Seq uint64
	Request
}

// Row is one entry prepared for display.
type Row struct {
	Record   models.ExportRecord
	Website  Annotated
	Username Annotated
	Notes    Annotated
}

// View is the rendered result of the latest query.
type View struct {
	Mode       Mode
	Term       string
	Page       int
	TotalPages int
	Total      int
	Rows       []Row
}

// NoResults reports whether the query succeeded with zero entries.
func (v *View) NoResults() bool {
	return len(v.Rows) == 0
}

// Paginator owns the browse view's State. Only the response to the most
// recently issued query is applied; older responses are dropped. A failed
// response rolls the state back to the last one a response confirmed.
type Paginator struct {
	fetcher remote.PageFetcher
	key     remote.EncKey

	mu        sync.Mutex
	state     State
	confirmed State
	latest    uint64
}

// NewPaginator creates a paginator in the initial browsing state.
func NewPaginator(fetcher remote.PageFetcher, key remote.EncKey) *Paginator {
	return &Paginator{
		fetcher:   fetcher,
		key:       key,
		state:     Initial(),
		confirmed: Initial(),
	}
}

// State returns a snapshot of the current state.
func (p *Paginator) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

type transition func(State) (State, Request, bool)

func (p *Paginator) step(t transition) (Query, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, req, issue := t(p.state)
	p.state = next
	if !issue {
		return Query{}, false
	}
	p.latest++
	return Query{Seq: p.latest, Request: req}, true
}

// Load issues the query for the current state, e.g. on view load.
func (p *Paginator) Load() Query {
	q, _ := p.step(State.Load)
	return q
}

// SubmitSearch applies a search submission. The bool is false when no query is needed.
func (p *Paginator) SubmitSearch(term string) (Query, bool) {
	return p.step(func(s State) (State, Request, bool) { return s.SubmitSearch(term) })
}

// TermChanged reacts to edits of the search input.
func (p *Paginator) TermChanged(term string) (Query, bool) {
	return p.step(func(s State) (State, Request, bool) { return s.TermChanged(term) })
}

// Navigate moves one page in dir.
func (p *Paginator) Navigate(dir Direction) (Query, bool) {
	return p.step(func(s State) (State, Request, bool) { return s.Navigate(dir) })
}

// Execute sends q to the store and applies the response. A nil view with a
// nil error means the response was superseded and discarded.
func (p *Paginator) Execute(ctx context.Context, q Query) (*View, error) {
	var (
		page *models.SearchPage
		err  error
	)
	switch q.Mode {
	case Searching:
		page, err = p.fetcher.SearchPage(ctx, q.Term, q.Page, p.key)
	default:
		page, err = p.fetcher.FetchPage(ctx, q.Page, p.key)
	}
	if err != nil {
		err = &models.BackendError{Op: q.Request.String(), Err: err}
	}
	return p.Apply(q, page, err)
}

// Apply folds a response for q into the state and renders it. Responses to
// superseded queries return (nil, nil) and leave the state untouched. An
// error restores the last confirmed state so the same action can be retried.
func (p *Paginator) Apply(q Query, page *models.SearchPage, err error) (*View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if q.Seq != p.latest {
		logger.Debug("Discarding stale page response", map[string]interface{}{
			"seq":    q.Seq,
			"latest": p.latest,
		})
		return nil, nil
	}
	if err != nil {
		p.state = p.confirmed
		return nil, err
	}
	if page == nil {
		page = &models.SearchPage{}
	}

	p.state = p.state.Resolve(page.Page, page.TotalPages)
	p.confirmed = p.state
	view := &View{
		Mode:       p.state.Mode,
		Term:       p.state.Term,
		Page:       p.state.Page,
		TotalPages: p.state.TotalPages,
		Total:      page.Total,
		Rows:       make([]Row, 0, len(page.Entries)),
	}
	term := ""
	if p.state.Mode == Searching {
		term = p.state.Term
	}
	for _, e := range page.Entries {
		view.Rows = append(view.Rows, renderRow(e, term))
	}
	return view, nil
}

func renderRow(e models.ExportRecord, term string) Row {
	row := Row{
		Record:   e,
		Website:  Highlight(e.Website, term),
		Username: Highlight(e.Username.Ok, term),
		Notes:    Highlight(e.Notes, term),
	}
	if e.Username.Failed() {
		row.Username = Annotated{Text: UndecryptableText}
	}
	return row
}
