package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khoad/asynclist/internal/database"
)

func newTestRepo(t *testing.T) *BookRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewBookRepo(db)
}

// fixture returns n books whose title order matches id order. Years repeat
// every ten books so year sorts exercise the id tiebreak.
func fixture(n int) []Book {
	out := make([]Book, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Book{
			ID:     fmt.Sprintf("b%03d", i),
			Title:  fmt.Sprintf("Title %03d", i),
			Author: fmt.Sprintf("Author %d", i%5),
			Year:   1950 + (i*7)%70,
			Pages:  100 + (i*13)%400,
			Rating: float64(i%10) / 2,
		})
	}
	return out
}

func collectAll(t *testing.T, repo *BookRepo, q BookQuery) []Book {
	t.Helper()
	ctx := context.Background()
	var all []Book
	for {
		page, next, err := repo.List(ctx, q)
		require.NoError(t, err)
		all = append(all, page...)
		if next == "" {
			return all
		}
		require.NotEmpty(t, page, "cursor with empty page")
		q.Cursor = next
	}
}

func TestInsertAndGet(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	b := Book{ID: "b001", Title: "The Go Programming Language", Author: "Donovan", Year: 2015, Pages: 380, Rating: 4.5}
	require.NoError(t, repo.Insert(ctx, b))

	got, err := repo.Get(ctx, "b001")
	require.NoError(t, err)
	require.Equal(t, b, got)

	_, err = repo.Get(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInsertBatchIsAtomic(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	books := fixture(3)
	books = append(books, Book{ID: books[0].ID, Title: "Duplicate"})
	require.Error(t, repo.InsertBatch(ctx, books))

	n, err := repo.Count(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 0, n, "failed batch must leave no rows behind")
}

func TestListPaginatesWithCursor(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, fixture(25)))

	page1, cur1, err := repo.List(ctx, BookQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page1, 10)
	require.NotEmpty(t, cur1)

	page2, cur2, err := repo.List(ctx, BookQuery{Limit: 10, Cursor: cur1})
	require.NoError(t, err)
	require.Len(t, page2, 10)
	require.NotEmpty(t, cur2)

	page3, cur3, err := repo.List(ctx, BookQuery{Limit: 10, Cursor: cur2})
	require.NoError(t, err)
	require.Len(t, page3, 5)
	require.Empty(t, cur3)

	seen := map[string]bool{}
	var order []string
	for _, b := range append(append(page1, page2...), page3...) {
		require.False(t, seen[b.ID], "duplicate %s across pages", b.ID)
		seen[b.ID] = true
		order = append(order, b.Title)
	}
	require.Len(t, seen, 25)
	require.IsIncreasing(t, order)
}

func TestListDefaultLimit(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, fixture(25)))

	page, next, err := repo.List(ctx, BookQuery{})
	require.NoError(t, err)
	require.Len(t, page, 25)
	require.Empty(t, next)
}

func TestListSortsByYearDescending(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, fixture(25)))

	all := collectAll(t, repo, BookQuery{Sort: "year", Desc: true, Limit: 7})
	require.Len(t, all, 25)
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		require.GreaterOrEqual(t, prev.Year, cur.Year, "years out of order at %d", i)
		if prev.Year == cur.Year {
			require.Greater(t, prev.ID, cur.ID, "id tiebreak out of order at %d", i)
		}
	}
}

func TestListSortsByPages(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, fixture(25)))

	all := collectAll(t, repo, BookQuery{Sort: "pages", Limit: 4})
	require.Len(t, all, 25)
	for i := 1; i < len(all); i++ {
		require.LessOrEqual(t, all[i-1].Pages, all[i].Pages)
	}
}

func TestListUnknownSortFallsBackToTitle(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, fixture(5)))

	page, _, err := repo.List(ctx, BookQuery{Sort: "rating; DROP TABLE books"})
	require.NoError(t, err)
	require.Len(t, page, 5)
	require.Equal(t, "Title 000", page[0].Title)
}

func TestListSearchMatchesTitleAndAuthor(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, fixture(25)))

	byAuthor := collectAll(t, repo, BookQuery{Search: "Author 3", Limit: 2})
	require.Len(t, byAuthor, 5)
	for _, b := range byAuthor {
		require.Equal(t, "Author 3", b.Author)
	}

	byTitle, next, err := repo.List(ctx, BookQuery{Search: "Title 004"})
	require.NoError(t, err)
	require.Empty(t, next)
	require.Len(t, byTitle, 1)
	require.Equal(t, "b004", byTitle[0].ID)
}

func TestListRejectsForeignCursor(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, fixture(10)))

	_, cur, err := repo.List(ctx, BookQuery{Limit: 3})
	require.NoError(t, err)
	require.NotEmpty(t, cur)

	_, _, err = repo.List(ctx, BookQuery{Sort: "year", Limit: 3, Cursor: cur})
	require.Error(t, err)

	_, _, err = repo.List(ctx, BookQuery{Limit: 3, Cursor: "!!not-base64!!"})
	require.Error(t, err)
}

func TestListCursorSurvivesControlCharacters(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	books := []Book{
		{ID: "c1", Title: "Alpha", Author: "A", Year: 2000, Pages: 100},
		{ID: "c2", Title: "Beta\x1fGamma", Author: "B", Year: 2001, Pages: 200},
		{ID: "c3", Title: "Delta", Author: "C", Year: 2002, Pages: 300},
	}
	require.NoError(t, repo.InsertBatch(ctx, books))

	// The page boundary lands on the title carrying a control byte, so the
	// cursor must round-trip it intact or page two repeats the row.
	page1, cur, err := repo.List(ctx, BookQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.Equal(t, "Beta\x1fGamma", page1[1].Title)
	require.NotEmpty(t, cur)

	page2, cur, err := repo.List(ctx, BookQuery{Limit: 2, Cursor: cur})
	require.NoError(t, err)
	require.Empty(t, cur)
	require.Len(t, page2, 1)
	require.Equal(t, "Delta", page2[0].Title)
}

func TestCount(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, fixture(25)))

	total, err := repo.Count(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 25, total)

	filtered, err := repo.Count(ctx, "Author 0")
	require.NoError(t, err)
	require.Equal(t, 5, filtered)
}

func TestTitles(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, fixture(6)))

	titles, err := repo.Titles(ctx)
	require.NoError(t, err)
	require.Len(t, titles, 6)
	require.IsIncreasing(t, titles)
}
