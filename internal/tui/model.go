package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/shalafinder/shala/internal/bookmarks"
	"github.com/shalafinder/shala/internal/core"
	"github.com/shalafinder/shala/internal/listing"
	"github.com/shalafinder/shala/internal/logger"
	"github.com/shalafinder/shala/internal/util"
)

// KeyMap defines the keybindings for the browse TUI
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	Search        key.Binding
	Filter        key.Binding
	Sort          key.Binding
	Bookmark      key.Binding
	BookmarksView key.Binding
	LoadMore      key.Binding
	Refresh       key.Binding
	Dismiss       key.Binding
	Tab           key.Binding
	Quit          key.Binding
	Help          key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("ctrl+u", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("ctrl+d", "scroll down"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Filter: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "country filter"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle sort"),
	),
	Bookmark: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "save/unsave"),
	),
	BookmarksView: key.NewBinding(
		key.WithKeys("B"),
		key.WithHelp("B", "saved view"),
	),
	LoadMore: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "load more"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "dismiss error"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch panel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// Panel focus for compact mode
type PanelFocus int

const (
	FocusList PanelFocus = iota
	FocusDetail
)

// inputMode says which text input, if any, owns the keyboard.
type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputFilter
)

// sortCycle is the order the sort key steps through. Index 0 is the
// backend's default order.
var sortCycle = []*core.SortConfig{
	nil,
	{Field: core.SortByStartDate, Order: core.SortAsc},
	{Field: core.SortByStartDate, Order: core.SortDesc},
	{Field: core.SortByPrice, Order: core.SortAsc},
	{Field: core.SortByPrice, Order: core.SortDesc},
}

// Messages
type fetchResultMsg struct {
	res listing.Result
}

type debounceMsg struct {
	seq int
}

// Model is the Bubble Tea model for the browse TUI
type Model struct {
	coord   *listing.Coordinator
	catalog core.Catalog
	store   *bookmarks.Store
	log     logger.Logger

	selectedIdx   int
	width         int
	height        int
	listWidth     int
	detailWidth   int
	contentHeight int
	keys          KeyMap
	listView      viewport.Model
	detailView    viewport.Model
	viewportReady bool
	compactMode   bool
	focusedPanel  PanelFocus
	showHelp      bool

	searchInput textinput.Model
	filterInput textinput.Model
	mode        inputMode
	sortIdx     int
	loadSpinner spinner.Model
}

// NewModel creates a browse model over a shared coordinator and store.
func NewModel(coord *listing.Coordinator, catalog core.Catalog, store *bookmarks.Store, log logger.Logger) Model {
	search := textinput.New()
	search.Placeholder = "search retreats…"
	search.CharLimit = 120

	filter := textinput.New()
	filter.Placeholder = "country…"
	filter.CharLimit = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	return Model{
		coord:       coord,
		catalog:     catalog,
		store:       store,
		log:         log,
		keys:        DefaultKeyMap,
		searchInput: search,
		filterInput: filter,
		loadSpinner: sp,
	}
}

// Commands

func (m Model) fetchCmd(req listing.Request) tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		return fetchResultMsg{res: listing.Execute(context.Background(), catalog, req)}
	}
}

func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(listing.SearchDebounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// Init issues the initial fetch.
func (m Model) Init() tea.Cmd {
	return m.fetchCmd(m.coord.Start())
}

// calculateLayout calculates responsive layout dimensions
func (m *Model) calculateLayout() {
	minHeight := 10

	width := m.width
	height := m.height
	if height < minHeight {
		height = minHeight
	}

	// Header, input row, help bar, padding
	m.contentHeight = height - 7
	if m.contentHeight < 5 {
		m.contentHeight = 5
	}

	m.compactMode = width < 70

	if m.compactMode {
		m.listWidth = width - 4
		m.detailWidth = width - 4
		if m.listWidth < 20 {
			m.listWidth = 20
		}
		if m.detailWidth < 20 {
			m.detailWidth = 20
		}
		return
	}

	switch {
	case width < 100:
		m.listWidth = width * 45 / 100
	case width < 140:
		m.listWidth = width * 40 / 100
	default:
		m.listWidth = width * 35 / 100
		if m.listWidth > 60 {
			m.listWidth = 60
		}
	}
	if m.listWidth < 30 {
		m.listWidth = 30
	}

	m.detailWidth = width - m.listWidth - 5
	if m.detailWidth < 35 {
		m.detailWidth = 35
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.calculateLayout()

		listW, listH := m.listWidth-4, m.contentHeight-4
		detailW, detailH := m.detailWidth-4, m.contentHeight-4
		if listW < 10 {
			listW = 10
		}
		if listH < 1 {
			listH = 1
		}
		if detailW < 10 {
			detailW = 10
		}
		if detailH < 1 {
			detailH = 1
		}

		if !m.viewportReady {
			m.listView = viewport.New(listW, listH)
			m.detailView = viewport.New(detailW, detailH)
			m.viewportReady = true
		} else {
			m.listView.Width, m.listView.Height = listW, listH
			m.detailView.Width, m.detailView.Height = detailW, detailH
		}
		m.searchInput.Width = m.listWidth - 10
		m.filterInput.Width = m.listWidth - 10
		m.updateListContent()
		m.updateDetailContent()
		return m, nil

	case fetchResultMsg:
		m.coord.Apply(msg.res)
		if msg.res.Err != nil {
			m.log.Warn("fetch failed", logger.Err(msg.res.Err))
		}
		m.clampSelection()
		m.updateListContent()
		m.updateDetailContent()
		return m, nil

	case debounceMsg:
		if req, ok := m.coord.CommitSearch(msg.seq); ok {
			m.selectedIdx = 0
			m.updateListContent()
			return m, m.fetchCmd(req)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.coord.LoadingMore() {
			return m, nil
		}
		var cmd tea.Cmd
		m.loadSpinner, cmd = m.loadSpinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		// Clicking outside the search row closes the search input but
		// keeps the committed term, same as Escape.
		if m.mode == inputSearch && msg.Action == tea.MouseActionPress && msg.Y > 3 {
			m.closeSearch()
		}
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			m.showHelp = false
			return m, nil
		}
		switch m.mode {
		case inputSearch:
			return m.updateSearchInput(msg)
		case inputFilter:
			return m.updateFilterInput(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// updateSearchInput routes keys while the search box owns the keyboard.
func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.closeSearch()
		return m, nil
	case tea.KeyEnter:
		// Commit without waiting out the debounce window.
		seq := m.coord.SetSearchTerm(m.searchInput.Value())
		m.closeSearch()
		if req, ok := m.coord.CommitSearch(seq); ok {
			m.selectedIdx = 0
			m.updateListContent()
			return m, m.fetchCmd(req)
		}
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	seq := m.coord.SetSearchTerm(m.searchInput.Value())
	return m, tea.Batch(cmd, debounceCmd(seq))
}

// updateFilterInput routes keys while the country filter box is open.
func (m Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = inputNone
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = inputNone
		m.filterInput.Blur()
		var f *core.LocationFilter
		if v := strings.TrimSpace(m.filterInput.Value()); v != "" {
			f = &core.LocationFilter{Country: v}
		}
		// Location filter clears the search term; mirror that in the input.
		m.searchInput.SetValue("")
		if req, ok := m.coord.SetLocationFilter(f); ok {
			m.selectedIdx = 0
			m.updateListContent()
			return m, m.fetchCmd(req)
		}
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// updateBrowse handles normal browsing keys.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.coord.Items()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
			m.updateListContent()
			m.scrollListToSelection()
			m.updateDetailContent()
			m.detailView.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(items)-1 {
			m.selectedIdx++
			m.updateListContent()
			m.scrollListToSelection()
			m.updateDetailContent()
			m.detailView.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		if m.compactMode && m.focusedPanel == FocusList {
			m.listView.ViewUp()
		} else {
			m.detailView.ViewUp()
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		if m.compactMode && m.focusedPanel == FocusList {
			m.listView.ViewDown()
		} else {
			m.detailView.ViewDown()
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focusedPanel == FocusList {
			m.focusedPanel = FocusDetail
		} else {
			m.focusedPanel = FocusList
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = inputSearch
		m.coord.SetSearchActive(true)
		m.searchInput.SetValue(m.coord.RawSearch())
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.mode = inputFilter
		if f := m.coord.Location(); f != nil {
			m.filterInput.SetValue(f.Country)
		} else {
			m.filterInput.SetValue("")
		}
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Sort):
		m.sortIdx = (m.sortIdx + 1) % len(sortCycle)
		if req, ok := m.coord.SetSortConfig(sortCycle[m.sortIdx]); ok {
			m.selectedIdx = 0
			m.updateListContent()
			return m, m.fetchCmd(req)
		}
		return m, nil

	case key.Matches(msg, m.keys.Bookmark):
		if len(items) == 0 || m.selectedIdx >= len(items) {
			return m, nil
		}
		id := items[m.selectedIdx].ID
		if _, err := m.store.Toggle(id); err != nil {
			m.log.Error("bookmark toggle failed", logger.String("id", id), logger.Err(err))
		}
		m.updateListContent()
		m.updateDetailContent()
		return m, nil

	case key.Matches(msg, m.keys.BookmarksView):
		m.selectedIdx = 0
		req, ok := m.coord.ToggleBookmarksView()
		m.updateListContent()
		m.updateDetailContent()
		if ok {
			return m, m.fetchCmd(req)
		}
		return m, nil

	case key.Matches(msg, m.keys.LoadMore):
		if req, ok := m.coord.LoadMore(); ok {
			return m, tea.Batch(m.fetchCmd(req), m.loadSpinner.Tick)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.selectedIdx = 0
		if req, ok := m.coord.Refresh(); ok {
			return m, m.fetchCmd(req)
		}
		m.updateListContent()
		m.updateDetailContent()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.coord.DismissLoadMoreError()
		return m, nil
	}

	return m, nil
}

// closeSearch deactivates the search input. The committed term stays in
// effect; only focus changes.
func (m *Model) closeSearch() {
	m.mode = inputNone
	m.coord.SetSearchActive(false)
	m.searchInput.Blur()
}

func (m *Model) clampSelection() {
	if n := len(m.coord.Items()); m.selectedIdx >= n {
		m.selectedIdx = n - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	inputRow := m.renderInputRow()

	var content string
	switch {
	case m.coord.Loading():
		content = lipgloss.NewStyle().
			Width(m.width-4).
			Height(m.contentHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Render("Loading retreats...")
	case m.coord.Err() != "":
		content = lipgloss.NewStyle().
			Width(m.width - 4).
			Height(m.contentHeight).
			Render(ErrorStyle.Render("Error: " + m.coord.Err()))
	case m.compactMode:
		if m.showHelp {
			content = m.renderHelpPanel()
		} else if m.focusedPanel == FocusList {
			content = m.renderListPanel()
		} else {
			content = m.renderDetailPanel()
		}
	default:
		listPanel := m.renderListPanel()
		var rightPanel string
		if m.showHelp {
			rightPanel = m.renderHelpPanel()
		} else {
			rightPanel = m.renderDetailPanel()
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, listPanel, " ", rightPanel)
	}

	return AppStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, header, inputRow, content, m.renderFooter()),
	)
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render("🧘 shala")

	var badges []string
	if m.coord.BookmarksView() {
		badges = append(badges, BookmarksBadge.Render("SAVED"))
	}
	if term := m.coord.DebouncedSearch(); term != "" {
		badges = append(badges, SearchBadge.Render("search: "+util.TruncateText(term, 24)))
	}
	if f := m.coord.Location(); f != nil {
		label := f.Country
		if label == "" {
			label = f.StateProvince
		}
		badges = append(badges, BadgeStyle.Render("in: "+label))
	}
	if s := m.coord.Sort(); s != nil {
		arrow := "↑"
		if s.Order == core.SortDesc {
			arrow = "↓"
		}
		badges = append(badges, BadgeStyle.Render(string(s.Field)+" "+arrow))
	}

	parts := append([]string{title}, badges...)
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, " "))
}

// renderInputRow shows whichever text input is active, or a blank line to
// keep the layout stable.
func (m Model) renderInputRow() string {
	switch m.mode {
	case inputSearch:
		return "🔍 " + m.searchInput.View()
	case inputFilter:
		return "📍 " + m.filterInput.View()
	}
	return ""
}

// updateListContent updates the list viewport with the current page.
func (m *Model) updateListContent() {
	if !m.viewportReady {
		return
	}

	items := m.coord.Items()
	var lines []string
	if len(items) == 0 {
		lines = append(lines, EmptyStyle.Render(m.emptyMessage()))
	} else {
		for i, event := range items {
			lines = append(lines, m.renderListItem(event, i == m.selectedIdx, m.listView.Width))
		}
	}
	m.listView.SetContent(strings.Join(lines, "\n"))
}

// emptyMessage picks wording for a zero-item state; an empty saved view, an
// empty search, and an empty filter each read differently.
func (m Model) emptyMessage() string {
	switch {
	case m.coord.BookmarksView():
		return "No saved retreats yet — press b on a listing to save it"
	case m.coord.DebouncedSearch() != "":
		return fmt.Sprintf("No retreats match %q", m.coord.DebouncedSearch())
	case m.coord.Location() != nil:
		return "No retreats in this region"
	default:
		return "No retreats found"
	}
}

func (m Model) renderListItem(event core.Event, selected bool, maxWidth int) string {
	dateStr := event.StartDate.Format("Jan 2")
	if event.MultiDay() {
		dateStr += "–" + event.EndDate.Format("Jan 2")
	}
	date := DateStyle.Render(dateStr)

	priceStr := ""
	if event.Price != nil {
		priceStr = fmt.Sprintf("%.0f %s", event.Price.Amount, event.Price.Currency)
	}
	price := PriceStyle.Render(priceStr)

	mark := "  "
	if m.store.Contains(event.ID) {
		mark = BookmarkMarkStyle.Render("★ ")
	}

	// Date (12) + price (10) + mark (2) + padding
	titleWidth := maxWidth - 27
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := util.TruncateText(event.Title, titleWidth)

	line := fmt.Sprintf("%s%s %s %s", mark, date, price, title)
	if selected {
		return SelectedItemStyle.Render(line)
	}
	return NormalItemStyle.Render(line)
}

// scrollListToSelection keeps the selected row visible.
func (m *Model) scrollListToSelection() {
	if !m.viewportReady || len(m.coord.Items()) == 0 {
		return
	}

	selectedTop := m.selectedIdx
	selectedBottom := selectedTop + 1

	viewTop := m.listView.YOffset
	viewBottom := viewTop + m.listView.Height

	if selectedTop < viewTop {
		m.listView.SetYOffset(selectedTop)
	}
	if selectedBottom > viewBottom {
		m.listView.SetYOffset(selectedBottom - m.listView.Height)
	}
}

func (m Model) renderListPanel() string {
	items := m.coord.Items()
	header := lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true).
		Render(m.listTitle())

	counter := ""
	if len(items) > 0 {
		counter = lipgloss.NewStyle().
			Foreground(mutedColor).
			Render(fmt.Sprintf(" %d of %d", len(items), m.coord.Total()))
	}

	loadHint := ""
	switch {
	case m.coord.LoadingMore():
		loadHint = m.loadSpinner.View() + " loading more…"
	case m.coord.LoadMoreErr() != "":
		loadHint = ErrorBannerStyle.Render("load more failed: "+util.TruncateText(m.coord.LoadMoreErr(), m.listWidth-24)) +
			HelpStyle.Render(" x dismiss")
	case m.coord.CanLoadMore():
		loadHint = HelpStyle.Render("m to load more")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header+counter, m.listView.View(), loadHint)
	return ListPanelStyle.Width(m.listWidth).Height(m.contentHeight).Render(content)
}

func (m Model) listTitle() string {
	if m.coord.BookmarksView() {
		return "Saved retreats"
	}
	return "Retreats"
}

// updateDetailContent fills the detail viewport for the selected event.
func (m *Model) updateDetailContent() {
	if !m.viewportReady {
		return
	}
	items := m.coord.Items()
	if len(items) == 0 || m.selectedIdx >= len(items) {
		m.detailView.SetContent("")
		return
	}

	event := items[m.selectedIdx]
	width := m.detailView.Width
	var lines []string

	lines = append(lines, TitleStyle.Render(ansi.Wordwrap(event.Title, width, "")))
	lines = append(lines, "")

	when := event.StartDate.Format("Mon, Jan 2 2006")
	if event.MultiDay() {
		when += " – " + event.EndDate.Format("Mon, Jan 2 2006")
		nights := int(event.EndDate.Sub(event.StartDate.Time).Hours() / 24)
		when += fmt.Sprintf(" (%d nights)", nights)
	}
	lines = append(lines, renderField("🗓 When", when))

	if event.Price != nil {
		lines = append(lines, renderField("💰 Price", fmt.Sprintf("%.2f %s", event.Price.Amount, event.Price.Currency)))
	}
	if loc := event.LocationString(); loc != "" {
		lines = append(lines, renderWrappedField("📍 Where", loc, width))
	}
	if len(event.Tags) > 0 {
		lines = append(lines, renderField("🏷 Tags", TagStyle.Render(strings.Join(event.Tags, ", "))))
	}
	if m.store.Contains(event.ID) {
		lines = append(lines, renderField("★ Saved", "press b to unsave"))
	}

	if event.Description != "" {
		lines = append(lines, "")
		lines = append(lines, LabelStyle.Render("📝 About"))
		desc := util.StripHTML(event.Description)
		lines = append(lines, ValueStyle.Render(ansi.Wordwrap(desc, width, "")))
	}

	if len(event.Images) > 0 {
		lines = append(lines, "")
		lines = append(lines, LabelStyle.Render("🖼 Photos"))
		for i, img := range event.Images {
			label := fmt.Sprintf("photo %d", i+1)
			lines = append(lines, "   • "+util.MakeHyperlink(img, LinkStyle.Render(label)))
		}
	}

	m.detailView.SetContent(strings.Join(lines, "\n"))
}

func (m Model) renderDetailPanel() string {
	if len(m.coord.Items()) == 0 {
		return DetailPanelStyle.Width(m.detailWidth).Height(m.contentHeight).Render(
			EmptyStyle.Render("No retreat selected"),
		)
	}

	scrollInfo := ""
	if m.viewportReady && m.detailView.TotalLineCount() > m.detailView.Height {
		scrollInfo = lipgloss.NewStyle().
			Foreground(mutedColor).
			Render(fmt.Sprintf(" (%d%%)", int(m.detailView.ScrollPercent()*100)))
	}

	header := lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true).
		Render("Details") + scrollInfo

	return DetailPanelStyle.Width(m.detailWidth).Height(m.contentHeight).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", m.detailView.View()),
	)
}

func (m Model) renderFooter() string {
	keys := []string{
		HelpKeyStyle.Render("↑/↓") + " nav",
		HelpKeyStyle.Render("/") + " search",
		HelpKeyStyle.Render("c") + " country",
		HelpKeyStyle.Render("s") + " sort",
		HelpKeyStyle.Render("b") + " save",
		HelpKeyStyle.Render("B") + " saved",
		HelpKeyStyle.Render("m") + " more",
		HelpKeyStyle.Render("q") + " quit",
	}

	fullLine := strings.Join(keys, "  •  ")
	if lipgloss.Width(fullLine) > m.width-4 {
		return HelpStyle.Render(HelpKeyStyle.Render("?") + " help")
	}
	return HelpStyle.Render(fullLine)
}

func (m Model) renderHelpPanel() string {
	header := lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true).
		Render("Keyboard Shortcuts")

	lines := []string{
		"",
		HelpKeyStyle.Render("  ↑/↓        ") + " Move through the list",
		HelpKeyStyle.Render("  ctrl+u/d   ") + " Scroll detail panel",
		HelpKeyStyle.Render("  /          ") + " Search (Esc closes, term stays)",
		HelpKeyStyle.Render("  c          ") + " Filter by country (empty clears)",
		HelpKeyStyle.Render("  s          ") + " Cycle sort: date ↑↓, price ↑↓",
		HelpKeyStyle.Render("  b          ") + " Save / unsave selected retreat",
		HelpKeyStyle.Render("  B          ") + " Toggle saved-retreats view",
		HelpKeyStyle.Render("  m          ") + " Load more results",
		HelpKeyStyle.Render("  r          ") + " Refresh",
		HelpKeyStyle.Render("  x          ") + " Dismiss load-more error",
		HelpKeyStyle.Render("  tab        ") + " Switch panel",
		HelpKeyStyle.Render("  q / ctrl+c ") + " Quit",
		"",
		EmptyStyle.Render("  Press any key to close"),
	}

	panelWidth := m.detailWidth
	if m.compactMode {
		panelWidth = m.listWidth
	}
	return DetailPanelStyle.Width(panelWidth).Height(m.contentHeight).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n")),
	)
}

// Helper functions
func renderField(label, value string) string {
	return LabelStyle.Render(label) + " " + ValueStyle.Render(value)
}

// renderWrappedField renders a label-value field, word-wrapping the value to
// fit within maxWidth. Continuation lines align with the value.
func renderWrappedField(label, value string, maxWidth int) string {
	labelRendered := LabelStyle.Render(label)
	labelWidth := lipgloss.Width(labelRendered) + 1
	valueWidth := maxWidth - labelWidth
	if valueWidth < 10 {
		valueWidth = 10
	}
	wrapped := ansi.Wordwrap(value, valueWidth, "")
	wrapLines := strings.Split(wrapped, "\n")
	indent := strings.Repeat(" ", labelWidth)
	for i := 1; i < len(wrapLines); i++ {
		wrapLines[i] = indent + wrapLines[i]
	}
	return labelRendered + " " + ValueStyle.Render(strings.Join(wrapLines, "\n"))
}
