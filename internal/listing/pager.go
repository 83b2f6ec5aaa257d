// Package listing owns the paged-list state shared by every admin list
// view: server-driven pagination, server-driven search, and client-side
// predicate filters over the currently loaded page. The three axes stay
// independent: predicates never trigger a fetch and never change the
// server-reported counts.
package listing

import (
	"context"
	"errors"
	"strings"
	"sync"

	"grocery_admin/internal/api"

	"go.uber.org/zap"
)

// ErrStaleLoad reports that a response was discarded because a newer
// load was issued while it was in flight.
var ErrStaleLoad = errors.New("stale load discarded")

var ErrNoSearch = errors.New("search not supported for this resource")

type FetchFunc[T any] func(ctx context.Context, page int) (api.Paged[T], error)

type SearchFunc[T any] func(ctx context.Context, query string) ([]T, error)

// Predicate is a client-side filter over already-fetched items.
type Predicate[T any] func(T) bool

const DefaultPageSize = 10

// Pager reconciles one resource's list state. All methods are safe for
// concurrent use; an in-flight load that loses the race to a newer one
// is discarded rather than overwriting fresher state.
type Pager[T any] struct {
	fetch    FetchFunc[T]
	search   SearchFunc[T]
	pageSize int
	logger   *zap.Logger

	mu         sync.Mutex
	seq        uint64
	items      []T
	count      int
	page       int
	next       *string
	previous   *string
	query      string
	searchMode bool
	predicates map[string]Predicate[T]
	expanded   map[int]bool
}

type Option[T any] func(*Pager[T])

func WithSearch[T any](fn SearchFunc[T]) Option[T] {
	return func(p *Pager[T]) { p.search = fn }
}

func WithPageSize[T any](size int) Option[T] {
	return func(p *Pager[T]) {
		if size > 0 {
			p.pageSize = size
		}
	}
}

func NewPager[T any](fetch FetchFunc[T], logger *zap.Logger, opts ...Option[T]) *Pager[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Pager[T]{
		fetch:      fetch,
		pageSize:   DefaultPageSize,
		logger:     logger.Named("pager"),
		page:       1,
		predicates: map[string]Predicate[T]{},
		expanded:   map[int]bool{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadPage fetches page n and replaces the loaded items and total
// count. On failure the prior state is left intact. A response that
// arrives after a newer load was issued is dropped with ErrStaleLoad.
func (p *Pager[T]) LoadPage(ctx context.Context, n int) error {
	if n < 1 {
		n = 1
	}

	p.mu.Lock()
	p.seq++
	token := p.seq
	p.mu.Unlock()

	paged, err := p.fetch(ctx, n)

	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.seq {
		p.logger.Debug("discarding stale page load", zap.Int("page", n))
		return ErrStaleLoad
	}
	if err != nil {
		return err
	}

	p.items = paged.Results
	p.count = paged.Count
	p.page = n
	p.next = paged.Next
	p.previous = paged.Previous
	p.searchMode = false
	p.query = ""
	return nil
}

// LoadMore fetches the next page and appends its results instead of
// replacing the loaded set.
func (p *Pager[T]) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.searchMode || p.next == nil {
		p.mu.Unlock()
		return nil
	}
	target := p.page + 1
	p.seq++
	token := p.seq
	p.mu.Unlock()

	paged, err := p.fetch(ctx, target)

	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.seq {
		return ErrStaleLoad
	}
	if err != nil {
		return err
	}

	p.items = append(p.items, paged.Results...)
	p.count = paged.Count
	p.page = target
	p.next = paged.Next
	p.previous = paged.Previous
	return nil
}

// Search replaces the loaded set with the search result and collapses
// pagination to a single page. A blank query resets to the unfiltered
// first page.
func (p *Pager[T]) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return p.LoadPage(ctx, 1)
	}

	p.mu.Lock()
	if p.search == nil {
		p.mu.Unlock()
		return ErrNoSearch
	}
	p.seq++
	token := p.seq
	p.mu.Unlock()

	results, err := p.search(ctx, query)

	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.seq {
		return ErrStaleLoad
	}
	if err != nil {
		return err
	}

	p.items = results
	p.count = len(results)
	p.page = 1
	p.next = nil
	p.previous = nil
	p.searchMode = true
	p.query = query
	return nil
}

// Reload refetches the current page.
func (p *Pager[T]) Reload(ctx context.Context) error {
	p.mu.Lock()
	current := p.page
	p.mu.Unlock()
	return p.LoadPage(ctx, current)
}

func (p *Pager[T]) SetPredicate(key string, fn Predicate[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if fn == nil {
		delete(p.predicates, key)
		return
	}
	p.predicates[key] = fn
}

func (p *Pager[T]) ClearPredicate(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.predicates, key)
}

func (p *Pager[T]) ClearPredicates() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.predicates = map[string]Predicate[T]{}
}

// Items returns the loaded page unfiltered.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Visible applies the AND of all predicates to the loaded items. The
// counts reported by Bounds keep reflecting the unfiltered server page.
func (p *Pager[T]) Visible() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]T, 0, len(p.items))
	for _, item := range p.items {
		keep := true
		for _, pred := range p.predicates {
			if !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// RemoveItems drops matching items from the loaded page after a
// server-side delete; the total count is refreshed on the next fetch.
func (p *Pager[T]) RemoveItems(match func(T) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.items[:0]
	for _, item := range p.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	p.items = kept
}

// Bounds is the page arithmetic shown next to the pagination controls.
type Bounds struct {
	Page       int
	TotalPages int
	Count      int
	Start      int
	End        int
}

func (p *Pager[T]) Bounds() Bounds {
	p.mu.Lock()
	defer p.mu.Unlock()

	b := Bounds{
		Page:  p.page,
		Count: p.count,
	}
	if p.searchMode {
		b.TotalPages = 1
		if p.count > 0 {
			b.Start = 1
			b.End = p.count
		}
		return b
	}

	b.TotalPages = (p.count + p.pageSize - 1) / p.pageSize
	if p.count > 0 {
		b.Start = (p.page-1)*p.pageSize + 1
		b.End = b.Start + p.pageSize - 1
		if b.End > p.count {
			b.End = p.count
		}
	}
	return b
}

func (p *Pager[T]) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.searchMode || p.count == 0 {
		return false
	}
	if p.next != nil {
		return true
	}
	totalPages := (p.count + p.pageSize - 1) / p.pageSize
	return p.page < totalPages
}

func (p *Pager[T]) HasPrev() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.searchMode || p.count == 0 {
		return false
	}
	return p.previous != nil || p.page > 1
}

func (p *Pager[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

func (p *Pager[T]) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

func (p *Pager[T]) Query() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

// ToggleExpanded flips the per-row "view more" flag; it has no fetch
// implications.
func (p *Pager[T]) ToggleExpanded(id int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expanded[id] = !p.expanded[id]
	return p.expanded[id]
}

func (p *Pager[T]) IsExpanded(id int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.expanded[id]
}
