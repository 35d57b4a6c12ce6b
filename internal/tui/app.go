package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/khoad/asynclist"
	"github.com/khoad/asynclist/internal/catalog"
	"github.com/khoad/asynclist/internal/config"
	"github.com/khoad/asynclist/internal/database/repository"
	"github.com/khoad/asynclist/widgets"
)

// App wires the catalog list to the book repository.
type App struct {
	list   widgets.List[repository.Book]
	repo   *repository.BookRepo
	cfg    config.Config
	width  int
	height int

	// catalog stats, loaded once at startup for the footer and the
	// "did you mean" suggester.
	total  int
	titles []string

	footer lipgloss.Style
}

// New builds the app.
func New(cfg config.Config, repo *repository.BookRepo) *App {
	var opts []asynclist.Option[repository.Book]
	for _, col := range bookSortColumns {
		if col == cfg.UI.Sort {
			opts = append(opts, asynclist.WithInitialSort[repository.Book](asynclist.SortDescriptor{Column: col, Direction: asynclist.Ascending}))
			break
		}
	}

	list := widgets.NewList(widgets.Config[repository.Book]{
		Load:        bookLoader(repo, cfg.UI.PageSize),
		Columns:     bookColumns,
		Row:         bookRow,
		SortColumns: bookSortColumns,
		Title:       "Books",
		Options:     opts,
	})

	return &App{
		list:   list,
		repo:   repo,
		cfg:    cfg,
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.UI.Accent)),
	}
}

var (
	bookColumns = []widgets.Column{
		{Title: "Title"},
		{Title: "Author", Width: 22},
		{Title: "Year", Width: 5},
		{Title: "Pages", Width: 6},
		{Title: "Rating", Width: 6},
	}
	bookSortColumns = []string{"title", "author", "year", "pages"}
)

func bookRow(b repository.Book) []string {
	return []string{
		b.Title,
		b.Author,
		strconv.Itoa(b.Year),
		strconv.Itoa(b.Pages),
		fmt.Sprintf("%.1f", b.Rating),
	}
}

// bookLoader adapts BookRepo.List to the engine's load contract. Each call
// fetches one page; the repo cursor round-trips through the engine opaque.
func bookLoader(repo *repository.BookRepo, pageSize int) asynclist.LoadFunc[repository.Book] {
	return func(ctx context.Context, req asynclist.LoadRequest) (asynclist.LoadResult[repository.Book], error) {
		q := repository.BookQuery{
			Search: req.FilterText,
			Limit:  pageSize,
			Cursor: req.Cursor,
		}
		if req.Sort != nil {
			q.Sort = req.Sort.Column
			q.Desc = req.Sort.Direction == asynclist.Descending
		}
		items, next, err := repo.List(ctx, q)
		if err != nil {
			return asynclist.LoadResult[repository.Book]{}, err
		}
		return asynclist.LoadResult[repository.Book]{Items: items, Cursor: next}, nil
	}
}

type statsMsg struct {
	total  int
	titles []string
	err    error
}

func (a *App) loadStats() tea.Cmd {
	repo := a.repo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		total, err := repo.Count(ctx, "")
		if err != nil {
			return statsMsg{err: err}
		}
		titles, err := repo.Titles(ctx)
		if err != nil {
			return statsMsg{err: err}
		}
		return statsMsg{total: total, titles: titles}
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.list.Init(), a.loadStats())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// bottom line is the footer
		a.list.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case statsMsg:
		if msg.err == nil {
			a.total, a.titles = msg.total, msg.titles
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.list.Filtering() && msg.String() == "q" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 {
		return ""
	}
	return a.list.View() + "\n" + a.footerLine()
}

func (a *App) footerLine() string {
	snap := a.list.Engine().Snapshot()
	style := a.footer.MaxWidth(a.width)

	if snap.State == asynclist.StateIdle && snap.FilterText != "" && len(snap.Items) == 0 {
		if s, ok := catalog.Suggest(snap.FilterText, a.titles); ok {
			return style.Render(fmt.Sprintf("did you mean %q?", s))
		}
	}
	if a.total == 0 {
		return style.Render("catalog empty, run: bookbrowser seed")
	}
	return style.Render(fmt.Sprintf("catalog: %d books", a.total))
}
