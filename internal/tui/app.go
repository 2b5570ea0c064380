package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsmatch/internal/article"
	"github.com/matheuskafuri/newsmatch/internal/browser"
	"github.com/matheuskafuri/newsmatch/internal/filter"
	"github.com/matheuskafuri/newsmatch/internal/profile"
	"github.com/matheuskafuri/newsmatch/internal/state"
	"github.com/matheuskafuri/newsmatch/internal/swipe"
	"go.uber.org/zap"
)

type view int

const (
	viewDiscover view = iota
	viewSaved
	viewProfile
	viewCount
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type mode int

const (
	modeNormal mode = iota
	modeTutorial
	modeDetail
	modeEdit
	modeHelp
)

type App struct {
	stack     *swipe.Stack
	editor    *profile.Editor
	store     state.Store
	log       *zap.Logger
	userID    string
	shareBase string
	depth     int
	now       func() time.Time

	view   view
	mode   mode
	width  int
	height int

	// Saved view
	savedSel    filter.Selector
	savedCursor int

	// Profile view
	profileTag    string
	profileCursor int
	showLink      bool

	detail       article.Article
	detailScroll int
	form         profileForm

	status string
	err    error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Stack      *swipe.Stack
	Profile    *profile.Editor
	Store      state.Store
	Logger     *zap.Logger
	UserID     string
	ShareBase  string
	StackDepth int
}

func NewApp(opts RunOpts) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = state.NewMemory()
	}
	depth := opts.StackDepth
	if depth <= 0 {
		depth = 3
	}
	stack := opts.Stack
	if stack == nil {
		stack = swipe.New(nil)
	}
	editor := opts.Profile
	if editor == nil {
		editor = profile.NewEditor(profile.Default(opts.UserID))
	}

	a := &App{
		stack:     stack,
		editor:    editor,
		store:     store,
		log:       log,
		userID:    opts.UserID,
		shareBase: opts.ShareBase,
		depth:     depth,
		now:       time.Now,
		form:      newProfileForm(),
	}
	if !state.TutorialSeen(store) {
		a.mode = modeTutorial
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// savedVisible is the saved collection narrowed by the Saved view selectors.
func (a *App) savedVisible() []article.Article {
	return filter.Apply(a.stack.Saved(), a.savedSel)
}

// profileVisible is the saved collection narrowed by the Profile tag chip.
func (a *App) profileVisible() []article.Article {
	return filter.Apply(a.stack.Saved(), filter.Selector{Tag: a.profileTag})
}

func (a *App) shareURL() string {
	return profile.ShareURL(a.shareBase, a.userID)
}

func (a *App) markTutorialSeenCmd() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		if err := state.MarkTutorialSeen(store); err != nil {
			return errMsg{err: fmt.Errorf("saving tutorial flag: %w", err)}
		}
		return tutorialSavedMsg{}
	}
}

func copyLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(url); err != nil {
			return errMsg{err: fmt.Errorf("copying link: %w", err)}
		}
		return linkCopiedMsg{}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky status on any keypress
		a.err = nil
		a.status = ""
		return a.handleKey(msg)

	case errMsg:
		a.err = msg.err
		a.log.Warn("background task failed", zap.Error(msg.err))
		return a, nil

	case linkCopiedMsg:
		a.status = "Link copied"
		return a, nil

	case tutorialSavedMsg:
		a.log.Debug("tutorial flag saved")
		return a, nil
	}

	if a.mode == modeEdit {
		return a, a.form.update(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeTutorial:
		a.mode = modeNormal
		a.log.Info("tutorial dismissed")
		return a, a.markTutorialSeenCmd()
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeNormal
		}
		return a, nil
	case modeDetail:
		return a.handleDetailKey(msg)
	case modeEdit:
		return a.handleEditKey(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "?":
		a.mode = modeHelp
		return a, nil
	case "tab":
		a.switchView((a.view + 1) % viewCount)
		return a, nil
	case "shift+tab":
		a.switchView((a.view + viewCount - 1) % viewCount)
		return a, nil
	case "1":
		a.switchView(viewDiscover)
		return a, nil
	case "2":
		a.switchView(viewSaved)
		return a, nil
	case "3":
		a.switchView(viewProfile)
		return a, nil
	}

	switch a.view {
	case viewDiscover:
		return a.handleDiscoverKey(msg)
	case viewSaved:
		return a.handleSavedKey(msg)
	case viewProfile:
		return a.handleProfileKey(msg)
	}
	return a, nil
}

func (a *App) switchView(v view) {
	a.view = v
	a.showLink = false
}

func (a *App) openDetail(art article.Article) {
	a.detail = art
	a.detailScroll = 0
	a.mode = modeDetail
}

func (a *App) decide(d swipe.Direction) {
	dec := a.stack.Decide(d)
	if !dec.Applied {
		return
	}
	a.log.Info("swipe",
		zap.String("direction", dec.Direction.String()),
		zap.String("article", dec.Article.ID.String()),
		zap.Bool("saved", dec.Saved),
		zap.Int("remaining", a.stack.Len()),
	)
	switch {
	case dec.Saved:
		a.status = "Saved: " + dec.Article.Title
	case d == swipe.Like:
		a.status = "Already saved"
	}
}

func (a *App) handleDiscoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "l", " ":
		a.decide(swipe.Like)
	case "left", "h", "x":
		a.decide(swipe.Dismiss)
	case "enter", "i":
		if front, ok := a.stack.Front(); ok {
			a.openDetail(front)
		}
	case "r":
		a.stack.Reset()
		a.status = "Back to the first article"
		a.log.Info("stack reset", zap.Int("queued", a.stack.Len()))
	}
	return a, nil
}

func (a *App) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	saved := a.stack.Saved()
	visible := a.savedVisible()

	switch msg.String() {
	case "j", "down":
		if a.savedCursor < len(visible)-1 {
			a.savedCursor++
		}
		return a, nil
	case "k", "up":
		if a.savedCursor > 0 {
			a.savedCursor--
		}
		return a, nil
	case "enter":
		if a.savedCursor < len(visible) {
			a.openDetail(visible[a.savedCursor])
		}
		return a, nil
	case "t":
		a.savedSel.Tag = filter.Cycle(filter.DistinctTags(saved), a.savedSel.Tag)
	case "T":
		a.savedSel.Tag = filter.CycleBack(filter.DistinctTags(saved), a.savedSel.Tag)
	case "d":
		a.savedSel.Date = filter.Cycle(filter.DistinctDates(saved), a.savedSel.Date)
	case "D":
		a.savedSel.Date = filter.CycleBack(filter.DistinctDates(saved), a.savedSel.Date)
	case "a":
		a.savedSel = filter.Selector{}
	default:
		return a, nil
	}

	// Selector changed
	a.savedCursor = 0
	a.log.Debug("saved filter", zap.String("tag", a.savedSel.Tag), zap.String("date", a.savedSel.Date))
	return a, nil
}

func (a *App) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := a.profileVisible()
	tags := filter.DistinctTags(a.stack.Saved())

	switch msg.String() {
	case "j", "down":
		if a.profileCursor < len(visible)-1 {
			a.profileCursor++
		}
	case "k", "up":
		if a.profileCursor > 0 {
			a.profileCursor--
		}
	case "enter":
		if a.profileCursor < len(visible) {
			a.openDetail(visible[a.profileCursor])
		}
	case "t":
		a.profileTag = filter.Cycle(tags, a.profileTag)
		a.profileCursor = 0
	case "T":
		a.profileTag = filter.CycleBack(tags, a.profileTag)
		a.profileCursor = 0
	case "a":
		a.profileTag = ""
		a.profileCursor = 0
	case "e":
		a.editor.Begin()
		a.mode = modeEdit
		return a, a.form.load(a.editor.Draft())
	case "c":
		a.showLink = true
		return a, copyLinkCmd(a.shareURL())
	case "o":
		return a, openBrowserCmd(a.shareURL())
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter", "backspace":
		a.mode = modeNormal
	case "j", "down":
		a.detailScroll++
	case "k", "up":
		if a.detailScroll > 0 {
			a.detailScroll--
		}
	case "o":
		if a.detail.ImageURL != "" {
			return a, openBrowserCmd(a.detail.ImageURL)
		}
	}
	return a, nil
}

func (a *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editor.Cancel()
		a.mode = modeNormal
		a.status = "Edit cancelled"
		return a, nil
	case "enter":
		a.form.apply(a.editor)
		if a.editor.Commit() {
			a.status = "Profile updated"
			a.log.Info("profile updated", zap.String("name", a.editor.Current().Name))
		}
		a.mode = modeNormal
		return a, nil
	case "tab", "down":
		return a, a.form.move(1)
	case "shift+tab", "up":
		return a, a.form.move(-1)
	}
	return a, a.form.update(msg)
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorPrimary).Render("  newsmatch")
	}

	bodyHeight := a.height - 4 // header, nav, blank, status
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	var body, hints string
	switch a.mode {
	case modeTutorial:
		return renderTutorial(a.width, a.height)
	case modeHelp:
		body, hints = renderHelp(a.width, bodyHeight), "? close  q close"
	case modeDetail:
		body = renderDetail(a.detail, a.width, bodyHeight, a.detailScroll)
		hints = "esc close  j/k scroll"
		if a.detail.ImageURL != "" {
			hints = "esc close  j/k scroll  o image"
		}
	case modeEdit:
		body, hints = a.form.view(a.width, bodyHeight), "enter save  esc cancel"
	default:
		body, hints = a.renderView(bodyHeight)
	}

	headerLeft := headerStyle.Render("newsmatch")
	headerRight := headerDateStyle.Render(a.now().Format("Jan 2"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	nav := renderNav(a.view, a.stack.SavedLen(), a.width)

	left := fmt.Sprintf("%d left · %d saved", a.stack.Len(), a.stack.SavedLen())
	if a.status != "" {
		left = a.status
	}
	if a.err != nil {
		left = errorStyle.Render(a.err.Error())
	}
	status := renderStatusBar(left, hints, a.width)

	body = fitHeight(body, bodyHeight)
	return lipgloss.JoinVertical(lipgloss.Left, header, nav, "", body, status)
}

func (a *App) renderView(height int) (string, string) {
	switch a.view {
	case viewSaved:
		return a.renderSaved(height), "j/k move  t tag  d date  a all  enter read"
	case viewProfile:
		return a.renderProfile(height), "e edit  c copy link  o open  t tag  enter read"
	}

	if a.stack.Len() == 0 {
		return renderEmptyStack(a.width, height), "r start over  tab views  q quit"
	}
	return renderStack(a.stack.Peek(a.depth), a.width, height), "← skip  → save  enter read  ? help"
}

func (a *App) renderSaved(height int) string {
	saved := a.stack.Saved()
	if len(saved) == 0 {
		return lipglossCenter("Swipe right on articles to save them here", a.width, height)
	}

	dates := renderChips("date", "All", filter.DistinctDates(saved), a.savedSel.Date, dateChip(a.now()), a.width-2)
	tags := renderChips("tag", "All tags", filter.DistinctTags(saved), a.savedSel.Tag, tagChip, a.width-2)

	listHeight := height - 3
	list := renderList(a.savedVisible(), a.savedCursor, listHeight, a.width-2, "No saved articles match these filters")

	return " " + dates + "\n " + tags + "\n\n" + indent(list, 1)
}

func (a *App) renderProfile(height int) string {
	p := a.editor.Current()
	w := a.width - 2

	var lines []string
	lines = append(lines, avatarStyle.Render(p.Initial())+"  "+profileNameStyle.Render(p.Name))
	if p.Bio != "" {
		lines = append(lines, cardSummaryStyle.Width(w).Render(wrapText(p.Bio, w)))
	}
	lines = append(lines, cardMetaStyle.Render(p.Location+" · "+p.Website))
	if a.showLink {
		lines = append(lines, detailLinkStyle.Render("Share: "+a.shareURL()))
	}
	lines = append(lines, "")

	saved := a.stack.Saved()
	lines = append(lines, detailSectionStyle.Render(fmt.Sprintf("Saved articles (%d)", len(saved))))
	if tags := filter.DistinctTags(saved); len(tags) > 0 {
		lines = append(lines, renderChips("tag", "All", tags, a.profileTag, tagChip, w))
	}
	lines = append(lines, "")

	top := strings.Join(lines, "\n")
	listHeight := height - lipgloss.Height(top) - 1
	list := renderList(a.profileVisible(), a.profileCursor, listHeight, w, "Nothing saved yet")

	return indent(top+"\n"+list, 1)
}

// fitHeight pads or cuts s to exactly height lines.
func fitHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
