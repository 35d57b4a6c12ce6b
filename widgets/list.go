package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/khoad/asynclist"
)

// loadMoreThreshold is how close to the last loaded row the cursor may get
// before the next page is requested.
const loadMoreThreshold = 5

// Config describes a list component.
type Config[T asynclist.Item] struct {
	// Load feeds the underlying engine. Required.
	Load asynclist.LoadFunc[T]

	// Sort, when set, makes sort changes reorder in memory instead of
	// refetching.
	Sort asynclist.SortFunc[T]

	// Columns and Row turn one item into one table row.
	Columns []Column
	Row     func(T) []string

	// SortColumns are the column identifiers the sort key cycles
	// through. Empty disables sort cycling.
	SortColumns []string

	// Title is drawn above the header row.
	Title string

	// Options are extra engine options. The component registers its own
	// change hook, so do not pass WithOnChange here.
	Options []asynclist.Option[T]
}

// List is a Bubble Tea component showing one asynclist engine as a
// scrolling table: j/k moves, space selects, s/S sorts, / filters, r
// reloads. It requests the next page automatically as the cursor nears the
// end of the loaded rows.
//
// Engine changes arrive as messages: the change hook feeds a one-slot
// channel that Init and Update pump with a wait command, so bursts of
// engine activity coalesce into a single refresh.
type List[T asynclist.Item] struct {
	engine *asynclist.List[T]
	events chan struct{}

	cfg  Config[T]
	keys keyMap

	snap     asynclist.Snapshot[T]
	selected map[string]bool
	cursor   int
	offset   int
	width    int
	height   int
	sortIdx  int

	spin      spinner.Model
	input     textinput.Model
	filtering bool
}

// engineActivityMsg signals that an engine committed a change. It carries
// the channel it came from so only the owning component re-arms the wait.
type engineActivityMsg struct{ ch chan struct{} }

func waitActivity(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return engineActivityMsg{ch: ch}
	}
}

// NewList builds the component and the engine it owns.
func NewList[T asynclist.Item](cfg Config[T]) List[T] {
	events := make(chan struct{}, 1)
	opts := append([]asynclist.Option[T]{}, cfg.Options...)
	if cfg.Sort != nil {
		opts = append(opts, asynclist.WithSortFunc(cfg.Sort))
	}
	opts = append(opts, asynclist.WithOnChange[T](func(asynclist.Event) {
		select {
		case events <- struct{}{}:
		default:
		}
	}))
	engine := asynclist.New(cfg.Load, opts...)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorAccent)

	input := textinput.New()
	input.Placeholder = "type to filter"
	input.Prompt = "/ "
	input.PromptStyle = filterPromptStyle

	m := List[T]{
		engine:  engine,
		events:  events,
		cfg:     cfg,
		keys:    defaultKeyMap(),
		width:   80,
		height:  24,
		sortIdx: -1,
		spin:    spin,
		input:   input,
	}
	m.applySnapshot(engine.Snapshot())
	if m.snap.Sort != nil {
		for i, col := range cfg.SortColumns {
			if col == m.snap.Sort.Column {
				m.sortIdx = i
			}
		}
	}
	return m
}

// Engine exposes the underlying engine for direct reads and mutations.
func (m List[T]) Engine() *asynclist.List[T] { return m.engine }

// Current returns the item under the cursor.
func (m List[T]) Current() (T, bool) {
	if m.cursor >= 0 && m.cursor < len(m.snap.Items) {
		return m.snap.Items[m.cursor], true
	}
	var zero T
	return zero, false
}

// Filtering reports whether the filter prompt is open and capturing keys.
func (m List[T]) Filtering() bool { return m.filtering }

// SetSize resizes the component.
func (m *List[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// Init starts the first load and the activity pump.
func (m List[T]) Init() tea.Cmd {
	engine := m.engine
	return tea.Batch(
		func() tea.Msg { engine.Reload(); return nil },
		m.spin.Tick,
		waitActivity(m.events),
	)
}

func (m List[T]) Update(msg tea.Msg) (List[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case engineActivityMsg:
		if msg.ch != m.events {
			return m, nil
		}
		m.applySnapshot(m.engine.Snapshot())
		return m, waitActivity(m.events)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.filtering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes one key press. While the filter prompt is open every key
// except enter and esc feeds the prompt, and the engine refetches on each
// keystroke; superseding cancellation keeps only the newest fetch alive.
func (m List[T]) handleKey(msg tea.KeyMsg) (List[T], tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
			m.input.Blur()
			return m, nil
		case "esc":
			m.filtering = false
			m.input.Blur()
			m.input.SetValue("")
			m.engine.SetFilterText("")
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != m.engine.FilterText() {
			m.engine.SetFilterText(v)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, m.maybeLoadMore()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.clampScroll()
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.snap.Items)
		m.moveCursor(-1)
		return m, m.maybeLoadMore()
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.viewHeight())
		return m, m.maybeLoadMore()
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.viewHeight())
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.Current(); ok {
			m.engine.Toggle(it.Key())
		}
	case key.Matches(msg, m.keys.SelectAll):
		m.engine.SelectAll()
	case key.Matches(msg, m.keys.ClearSel):
		m.engine.ClearSelection()
	case key.Matches(msg, m.keys.SortNext):
		m.cycleSort()
	case key.Matches(msg, m.keys.SortFlip):
		m.flipSort()
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.input.SetValue(m.snap.FilterText)
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.ClearFilter):
		if m.snap.FilterText != "" {
			m.engine.SetFilterText("")
		}
	case key.Matches(msg, m.keys.Reload):
		m.engine.Reload()
	}
	return m, nil
}

// ---- state helpers ----

func (m *List[T]) applySnapshot(snap asynclist.Snapshot[T]) {
	m.snap = snap
	m.selected = make(map[string]bool, len(snap.Selection))
	for _, k := range snap.Selection {
		m.selected[k] = true
	}
	if m.cursor > len(snap.Items)-1 {
		m.cursor = len(snap.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

func (m *List[T]) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor > len(m.snap.Items)-1 {
		m.cursor = len(m.snap.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

func (m *List[T]) clampScroll() {
	vh := m.viewHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// viewHeight is the row area: total height minus title, header, status and
// help lines.
func (m List[T]) viewHeight() int {
	vh := m.height - 4
	if vh < 1 {
		vh = 1
	}
	return vh
}

func (m List[T]) maybeLoadMore() tea.Cmd {
	if !m.snap.HasMore || m.cursor < len(m.snap.Items)-loadMoreThreshold {
		return nil
	}
	engine := m.engine
	return func() tea.Msg {
		// Droppable by contract: a no-op while any fetch is in flight.
		engine.LoadMore()
		return nil
	}
}

func (m *List[T]) cycleSort() {
	if len(m.cfg.SortColumns) == 0 {
		return
	}
	m.sortIdx = (m.sortIdx + 1) % len(m.cfg.SortColumns)
	m.engine.Sort(asynclist.SortDescriptor{
		Column:    m.cfg.SortColumns[m.sortIdx],
		Direction: asynclist.Ascending,
	})
}

func (m *List[T]) flipSort() {
	if d, ok := m.engine.SortDescriptor(); ok {
		m.engine.Sort(d.Reversed())
	}
}

// ---- view ----

func (m List[T]) View() string {
	var b strings.Builder

	title := titleStyle.Render(m.cfg.Title)
	if tag := m.sortTag(); tag != "" {
		title += "  " + sortTagStyle.Render(tag)
	}
	b.WriteString(bar(title, m.width))
	b.WriteString("\n")

	titles := make([]string, len(m.cfg.Columns))
	for i, col := range m.cfg.Columns {
		titles[i] = col.Title
	}
	b.WriteString(headerRowStyle.Render(bar("   "+renderCells(titles, m.cfg.Columns, m.width-3), m.width)))
	b.WriteString("\n")

	vh := m.viewHeight()
	rows := m.snap.Items
	end := m.offset + vh
	if end > len(rows) {
		end = len(rows)
	}
	drawn := 0
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i))
		b.WriteString("\n")
		drawn++
	}
	if drawn == 0 {
		b.WriteString(statusStyle.Render(m.emptyText()))
		b.WriteString("\n")
		drawn++
	}
	for ; drawn < vh; drawn++ {
		b.WriteString("\n")
	}

	b.WriteString(bar(m.statusLine(), m.width))
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(bar(m.helpLine(), m.width))
	}
	return b.String()
}

func (m List[T]) renderRow(it T, i int) string {
	line := renderCells(m.cfg.Row(it), m.cfg.Columns, m.width-3)
	sel := " "
	if m.selected[it.Key()] {
		sel = "*"
	}
	if i == m.cursor {
		return cursorRowStyle.Render(bar(">"+sel+" "+line, m.width))
	}
	return " " + selectedMarkStyle.Render(sel) + " " + rowStyle.Render(line)
}

func (m List[T]) sortTag() string {
	if m.snap.Sort == nil {
		return ""
	}
	arrow := "asc"
	if m.snap.Sort.Direction == asynclist.Descending {
		arrow = "desc"
	}
	return "sort " + m.snap.Sort.Column + " " + arrow
}

func (m List[T]) emptyText() string {
	switch {
	case m.snap.State.Loading():
		return ""
	case m.snap.FilterText != "":
		return fmt.Sprintf("no matches for %q", m.snap.FilterText)
	default:
		return "nothing to show"
	}
}

func (m List[T]) statusLine() string {
	st := m.snap.State
	if st.Loading() {
		return m.spin.View() + statusStyle.Render(stateVerb(st))
	}
	if st == asynclist.StateError && m.snap.Err != nil {
		return statusErrStyle.Render("error: " + m.snap.Err.Error())
	}
	parts := []string{fmt.Sprintf("%d items", len(m.snap.Items))}
	if m.snap.HasMore {
		parts = append(parts, "more available")
	}
	if n := len(m.snap.Selection); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if m.snap.FilterText != "" {
		parts = append(parts, fmt.Sprintf("filter %q", m.snap.FilterText))
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

func (m List[T]) helpLine() string {
	parts := make([]string, 0, 8)
	for _, kb := range m.keys.helpBindings() {
		h := kb.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

func stateVerb(s asynclist.LoadingState) string {
	switch s {
	case asynclist.StateLoadingMore:
		return "loading more"
	case asynclist.StateSorting:
		return "sorting"
	case asynclist.StateFiltering:
		return "filtering"
	default:
		return "loading"
	}
}
