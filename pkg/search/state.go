package search

import (
	"fmt"
	"strings"
)

// Mode is the browse view's query mode.
type Mode int

const (
	Browsing Mode = iota
	Searching
)

func (m Mode) String() string {
	if m == Searching {
		return "searching"
	}
	return "browsing"
}

// Direction moves between pages.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// State is the pagination state of the browse view. Transitions are pure:
// they return the next state and, when a query must be issued, its request.
type State struct {
	Mode       Mode
	Term       string
	Page       int
	TotalPages int
}

// Request describes a query to send to the store.
type Request struct {
	Mode Mode
	Term string
	Page int
}

func (r Request) String() string {
	if r.Mode == Searching {
		return fmt.Sprintf("search(%q, page %d)", r.Term, r.Page)
	}
	return fmt.Sprintf("browse(page %d)", r.Page)
}

// Initial is the state on view load.
func Initial() State {
	return State{Mode: Browsing, Page: 1}
}

func (s State) request() Request {
	return Request{Mode: s.Mode, Term: s.Term, Page: s.Page}
}

// browseFirst resets to the first browse page, keeping the known page count.
func (s State) browseFirst() (State, Request, bool) {
	next := State{Mode: Browsing, Page: 1, TotalPages: s.TotalPages}
	return next, next.request(), true
}

// Load issues the query for the current state.
func (s State) Load() (State, Request, bool) {
	return s, s.request(), true
}

// SubmitSearch starts a search for term, or returns to browsing when term is blank.
// Resubmitting the term of the current first search page is a no-op. The page
// count of a new search is unknown until its response arrives.
func (s State) SubmitSearch(term string) (State, Request, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.browseFirst()
	}
	if s.Mode == Searching && s.Term == term && s.Page == 1 {
		return s, Request{}, false
	}
	next := State{Mode: Searching, Term: term, Page: 1}
	return next, next.request(), true
}

// TermChanged handles edits to the search input. Clearing the input while
// searching returns to the first browse page.
func (s State) TermChanged(term string) (State, Request, bool) {
	if s.Mode == Searching && strings.TrimSpace(term) == "" {
		return s.browseFirst()
	}
	return s, Request{}, false
}

// Navigate moves one page in dir. At either boundary it is a no-op.
func (s State) Navigate(dir Direction) (State, Request, bool) {
	target := s.Page + int(dir)
	if target < 1 || target > s.TotalPages {
		return s, Request{}, false
	}
	next := s
	next.Page = target
	return next, next.request(), true
}

// Resolve folds a response into the state.
func (s State) Resolve(page, totalPages int) State {
	s.TotalPages = max(0, totalPages)
	if page >= 1 {
		s.Page = page
	}
	if s.TotalPages > 0 && s.Page > s.TotalPages {
		s.Page = s.TotalPages
	}
	return s
}
