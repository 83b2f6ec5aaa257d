package listing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"grocery_admin/internal/api"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID        int
	Name      string
	Available bool
	Popular   bool
}

// pagedFetch simulates a backend with total rows split into pageSize
// pages, DRF-style.
func pagedFetch(total, pageSize int) FetchFunc[row] {
	return func(_ context.Context, page int) (api.Paged[row], error) {
		start := (page - 1) * pageSize
		if start >= total {
			return api.Paged[row]{Count: total}, nil
		}
		end := start + pageSize
		if end > total {
			end = total
		}

		items := make([]row, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, row{ID: i + 1, Name: fmt.Sprintf("item-%d", i+1)})
		}

		paged := api.Paged[row]{Count: total, Results: items}
		if end < total {
			next := fmt.Sprintf("/api/rows/?page=%d", page+1)
			paged.Next = &next
		}
		if page > 1 {
			prev := fmt.Sprintf("/api/rows/?page=%d", page-1)
			paged.Previous = &prev
		}
		return paged, nil
	}
}

func TestLoadPageBounds(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		wantLen   int
		wantStart int
		wantEnd   int
		wantPages int
	}{
		{"first of three", 25, 1, 10, 1, 10, 3},
		{"middle", 25, 2, 10, 11, 20, 3},
		{"short last page", 25, 3, 5, 21, 25, 3},
		{"exact multiple", 20, 2, 10, 11, 20, 2},
		{"single page", 7, 1, 7, 1, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(pagedFetch(tt.total, 10), nil)
			require.NoError(t, p.LoadPage(context.Background(), tt.page))

			assert.Len(t, p.Items(), tt.wantLen)
			b := p.Bounds()
			assert.Equal(t, tt.wantStart, b.Start)
			assert.Equal(t, tt.wantEnd, b.End)
			assert.Equal(t, tt.wantPages, b.TotalPages)
			assert.Equal(t, tt.total, b.Count)
		})
	}
}

func TestBoundaryControls(t *testing.T) {
	p := NewPager(pagedFetch(25, 10), nil)
	ctx := context.Background()

	require.NoError(t, p.LoadPage(ctx, 1))
	assert.False(t, p.HasPrev(), "previous must be disabled on page 1")
	assert.True(t, p.HasNext())

	require.NoError(t, p.LoadPage(ctx, 3))
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext(), "next must be disabled on the last page")
}

func TestEmptyCollection(t *testing.T) {
	p := NewPager(pagedFetch(0, 10), nil)
	require.NoError(t, p.LoadPage(context.Background(), 1))

	b := p.Bounds()
	assert.Equal(t, 0, b.TotalPages)
	assert.Equal(t, 0, b.Count)
	assert.False(t, p.HasNext())
	assert.False(t, p.HasPrev())
}

func TestPredicatesComposeWithAND(t *testing.T) {
	items := []row{
		{ID: 1, Available: true, Popular: true},
		{ID: 2, Available: true, Popular: false},
		{ID: 3, Available: false, Popular: true},
		{ID: 4, Available: false, Popular: false},
	}
	fetch := func(context.Context, int) (api.Paged[row], error) {
		return api.Paged[row]{Count: 40, Results: items}, nil
	}

	p := NewPager(fetch, nil)
	require.NoError(t, p.LoadPage(context.Background(), 1))

	p.SetPredicate("stock", func(r row) bool { return r.Available })
	p.SetPredicate("flag", func(r row) bool { return r.Popular })

	want := []row{{ID: 1, Available: true, Popular: true}}
	if diff := cmp.Diff(want, p.Visible()); diff != "" {
		t.Errorf("visible items mismatch (-want +got):\n%s", diff)
	}

	// The displayed counts keep reflecting the unfiltered server page.
	assert.Equal(t, 40, p.Bounds().Count)
	assert.Len(t, p.Items(), 4)

	p.ClearPredicate("flag")
	assert.Len(t, p.Visible(), 2)
	p.ClearPredicates()
	assert.Len(t, p.Visible(), 4)
}

func TestSearchCollapsesToSinglePage(t *testing.T) {
	search := func(_ context.Context, query string) ([]row, error) {
		return []row{{ID: 9, Name: query}}, nil
	}
	p := NewPager(pagedFetch(25, 10), nil, WithSearch(search))
	ctx := context.Background()

	require.NoError(t, p.LoadPage(ctx, 2))
	require.NoError(t, p.Search(ctx, "mango"))

	assert.Len(t, p.Items(), 1)
	assert.Equal(t, 1, p.Bounds().TotalPages)
	assert.False(t, p.HasNext())
	assert.False(t, p.HasPrev())
	assert.Equal(t, "mango", p.Query())

	// A blank query resets to the unfiltered first page.
	require.NoError(t, p.Search(ctx, "   "))
	assert.Equal(t, 1, p.Page())
	assert.Len(t, p.Items(), 10)
	assert.Equal(t, 25, p.Count())
	assert.Empty(t, p.Query())
}

func TestSearchWithoutSearchFunc(t *testing.T) {
	p := NewPager(pagedFetch(5, 10), nil)
	err := p.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNoSearch)
}

func TestLoadMoreAppends(t *testing.T) {
	p := NewPager(pagedFetch(25, 10), nil)
	ctx := context.Background()

	require.NoError(t, p.LoadPage(ctx, 1))
	require.NoError(t, p.LoadMore(ctx))

	assert.Len(t, p.Items(), 20)
	assert.Equal(t, 2, p.Page())
	assert.Equal(t, 1, p.Items()[0].ID)
	assert.Equal(t, 20, p.Items()[19].ID)

	require.NoError(t, p.LoadMore(ctx))
	assert.Len(t, p.Items(), 25)

	// No next page left; a further LoadMore is a no-op.
	require.NoError(t, p.LoadMore(ctx))
	assert.Len(t, p.Items(), 25)
}

func TestFetchFailureLeavesStateIntact(t *testing.T) {
	boom := errors.New("backend down")
	calls := 0
	fetch := func(_ context.Context, page int) (api.Paged[row], error) {
		calls++
		if calls > 1 {
			return api.Paged[row]{}, boom
		}
		return pagedFetch(25, 10)(context.Background(), page)
	}

	p := NewPager(fetch, nil)
	ctx := context.Background()
	require.NoError(t, p.LoadPage(ctx, 1))

	err := p.LoadPage(ctx, 2)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, p.Page(), "failed load must not advance the page")
	assert.Len(t, p.Items(), 10)
	assert.Equal(t, 25, p.Count())
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, page int) (api.Paged[row], error) {
		if page == 1 {
			close(entered)
			<-release
		}
		return pagedFetch(25, 10)(ctx, page)
	}

	p := NewPager(fetch, nil)
	ctx := context.Background()

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- p.LoadPage(ctx, 1)
	}()

	<-entered
	require.NoError(t, p.LoadPage(ctx, 2))
	close(release)

	assert.ErrorIs(t, <-firstDone, ErrStaleLoad)
	assert.Equal(t, 2, p.Page(), "stale page 1 response must not overwrite page 2")
	assert.Equal(t, 11, p.Items()[0].ID)
}

func TestRemoveItems(t *testing.T) {
	p := NewPager(pagedFetch(25, 10), nil)
	require.NoError(t, p.LoadPage(context.Background(), 1))

	p.RemoveItems(func(r row) bool { return r.ID == 3 })

	assert.Len(t, p.Items(), 9)
	// The server-side count is untouched until the next fetch.
	assert.Equal(t, 25, p.Count())
}

func TestToggleExpanded(t *testing.T) {
	p := NewPager(pagedFetch(5, 10), nil)

	assert.False(t, p.IsExpanded(3))
	assert.True(t, p.ToggleExpanded(3))
	assert.True(t, p.IsExpanded(3))
	assert.False(t, p.ToggleExpanded(3))
	assert.False(t, p.IsExpanded(3))
}
