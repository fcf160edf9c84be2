// Package tui implements the interactive terminal application.
package tui

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/cliphunter-tui/config"
	"github.com/user/cliphunter-tui/cutter"
	"github.com/user/cliphunter-tui/db"
	"github.com/user/cliphunter-tui/mpv"
	"github.com/user/cliphunter-tui/session"
	"github.com/user/cliphunter-tui/tui/components"
	"github.com/user/cliphunter-tui/tui/forms"
	"github.com/user/cliphunter-tui/tui/styles"
)

const (
	// tickInterval is the interval for polling mpv status.
	tickInterval = 100 * time.Millisecond
	// resultDisplayDuration is how long to show notice messages.
	resultDisplayDuration = 3 * time.Second
	// cutTimeout bounds a single cut submission end to end, including retries.
	cutTimeout = 5 * time.Minute
	// boundStep is the seconds each nudge key moves a trim bound.
	boundStep = 1.0
)

// tickMsg is a message sent on every tick interval to update playback status.
type tickMsg time.Time

// clearNoticeMsg is sent to clear the notice message.
type clearNoticeMsg struct{}

// previewStopMsg is sent when a preview pass should stop.
// Gen identifies which preview pass the timer belongs to.
type previewStopMsg struct {
	gen int
}

// cutResultMsg carries the outcome of a cut submission.
type cutResultMsg struct {
	locator string
	err     error
}

// infoResultMsg carries the outcome of a source metadata lookup.
type infoResultMsg struct {
	info *cutter.VideoInfo
	err  error
}

// viewMode identifies the active top-level view.
type viewMode int

const (
	// viewLibrary shows the saved clip library.
	viewLibrary viewMode = iota
	// viewTrim shows the trim view for an open source.
	viewTrim
)

// Model is the Bubbletea model for the TUI application.
// It implements the tea.Model interface with Init, Update, and View methods.
type Model struct {
	// cfg holds the application configuration
	cfg *config.Config
	// database connection for the clip library
	database *sql.DB
	// cut service client
	cutter *cutter.Client
	// logger for application events
	logger *slog.Logger
	// mode is the active view
	mode viewMode
	// error message to display (if any)
	err error
	// quitting flag to signal shutdown
	quitting bool
	// terminal width
	width int
	// terminal height
	height int
	// showHelp indicates if the help overlay is visible
	showHelp bool
	// notice holds the transient result message
	notice components.NoticeState
	// statusBar holds playback state for the status bar
	statusBar components.StatusBarState
	// clipList holds the library list state
	clipList components.ClipListState
	// search holds the title filter input state
	search components.SearchInputState
	// searchActive indicates the filter input has focus
	searchActive bool

	// clipForm is the new-clip form, non-nil while it is shown
	clipForm *huh.Form
	// clipFormResult is bound to the clip form fields
	clipFormResult forms.ClipFormResult
	// deleteForm is the delete confirm form, non-nil while it is shown
	deleteForm *huh.Form
	// deleteConfirmed is bound to the delete form confirm field
	deleteConfirmed bool
	// deleteTarget is the clip pending deletion
	deleteTarget *components.ClipItem

	// player is the mpv IPC client for the open source, nil outside trim view
	player *mpv.Client
	// playerCmd is the mpv process handle, nil outside trim view
	playerCmd *exec.Cmd
	// sess is the active trim session, nil outside trim view
	sess *session.Session
	// trimMeta holds the clip metadata collected before trimming started
	trimMeta forms.ClipFormResult
	// trimThumbnail is the thumbnail URL from the source metadata lookup
	trimThumbnail string
	// previewing indicates a preview pass is playing
	previewing bool
	// previewGen identifies the latest preview pass
	previewGen int
}

// NewModel creates a new TUI model with the given configuration, database
// connection, cut service client, and logger.
func NewModel(cfg *config.Config, database *sql.DB, cut *cutter.Client, logger *slog.Logger) *Model {
	return &Model{
		cfg:      cfg,
		database: database,
		cutter:   cut,
		logger:   logger,
		mode:     viewLibrary,
	}
}

// Init initializes the model. It returns an optional command to run.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd returns a command that sends a tickMsg after the tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// setNotice stores a notice message and returns a command to clear it later.
func (m *Model) setNotice(text string, isError bool) tea.Cmd {
	m.notice.Set(text, isError)
	return tea.Tick(resultDisplayDuration, func(t time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.mode == viewTrim {
			m.updateStatusFromMpv()
		}
		return m, tickCmd()

	case clearNoticeMsg:
		m.notice.Clear()
		return m, nil

	case previewStopMsg:
		if m.sess != nil {
			m.sess.PreviewElapsed(msg.gen)
		}
		if msg.gen == m.previewGen {
			m.previewing = false
		}
		return m, nil

	case infoResultMsg:
		return m.handleInfoResult(msg)

	case cutResultMsg:
		return m.handleCutResult(msg)

	case tea.KeyMsg:
		// Help overlay - any key dismisses it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.clipForm != nil {
			return m.updateClipForm(msg)
		}

		if m.deleteForm != nil {
			return m.updateDeleteForm(msg)
		}

		if m.searchActive {
			return m.handleSearchInput(msg)
		}

		switch m.mode {
		case viewTrim:
			return m.handleTrimKeys(msg)
		default:
			return m.handleLibraryKeys(msg)
		}
	}

	// Forms also consume non-key messages (cursor blink and the like)
	if m.clipForm != nil {
		return m.updateClipForm(msg)
	}
	if m.deleteForm != nil {
		return m.updateDeleteForm(msg)
	}

	return m, nil
}

// handleLibraryKeys handles key events in the library view.
func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "j", "down":
		m.clipList.MoveDown()
		return m, nil
	case "k", "up":
		m.clipList.MoveUp()
		return m, nil
	case "/":
		m.searchActive = true
		return m, nil
	case "a", "A":
		m.clipFormResult = forms.ClipFormResult{
			Emotion:  config.Emotions[len(config.Emotions)-1],
			Category: config.Categories[len(config.Categories)-1],
		}
		m.clipForm = forms.NewClipForm(config.Emotions, config.Categories, &m.clipFormResult)
		return m, m.clipForm.Init()
	case "d", "D":
		item := m.clipList.GetSelectedItem()
		if item == nil {
			return m, m.setNotice("No clip selected", true)
		}
		m.deleteTarget = item
		m.deleteConfirmed = false
		m.deleteForm = forms.NewConfirmDeleteForm(item.Title, &m.deleteConfirmed)
		return m, m.deleteForm.Init()
	case "enter":
		item := m.clipList.GetSelectedItem()
		if item == nil {
			return m, m.setNotice("No clip selected", true)
		}
		m.trimMeta = forms.ClipFormResult{
			VideoURL:  item.VideoURL,
			Title:     item.Title,
			ShowTitle: item.ShowTitle,
			Emotion:   item.Emotion,
			Category:  item.Category,
		}
		m.trimThumbnail = ""
		return m.startTrim(item.VideoURL, item.Title, item.Duration)
	}
	return m, nil
}

// handleSearchInput handles key events while the filter input has focus.
func (m *Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchActive = false
		m.search.Clear()
		m.loadClips()
		return m, nil
	case "enter":
		m.searchActive = false
		return m, nil
	case "backspace":
		m.search.Backspace()
		m.loadClips()
		return m, nil
	case "left":
		m.search.MoveCursorLeft()
		return m, nil
	case "right":
		m.search.MoveCursorRight()
		return m, nil
	default:
		if len(msg.String()) == 1 {
			m.search.InsertChar(rune(msg.String()[0]))
			m.loadClips()
		} else if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.search.InsertChar(r)
			}
			m.loadClips()
		}
		return m, nil
	}
}

// handleTrimKeys handles key events in the trim view.
func (m *Model) handleTrimKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess == nil {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "esc", "q":
		if m.sess.State() == session.Submitting {
			return m, m.setNotice("Cut in progress, please wait", true)
		}
		if err := m.sess.Close(); err != nil {
			return m, m.setNotice(err.Error(), true)
		}
		m.leaveTrim()
		return m, nil
	case " ":
		if m.player != nil && m.player.IsConnected() {
			paused, err := m.player.GetPaused()
			if err == nil {
				_ = m.player.SetPaused(!paused)
			}
		}
		return m, nil
	case "h":
		return m.adjustBound(session.StartBound, -boundStep)
	case "l":
		return m.adjustBound(session.StartBound, boundStep)
	case "H":
		return m.adjustBound(session.EndBound, -boundStep)
	case "L":
		return m.adjustBound(session.EndBound, boundStep)
	case "s", "S":
		m.previewing = false
		if err := m.sess.SetStart(m.statusBar.TimePos); err != nil {
			return m, m.setNotice(setBoundError(err), true)
		}
		return m, nil
	case "e", "E":
		m.previewing = false
		if err := m.sess.SetEnd(m.statusBar.TimePos); err != nil {
			return m, m.setNotice(setBoundError(err), true)
		}
		return m, nil
	case "p", "P":
		gen, stopAfter, err := m.sess.PreviewCut()
		if err != nil {
			return m, m.setNotice(setBoundError(err), true)
		}
		m.previewing = true
		m.previewGen = gen
		return m, tea.Tick(stopAfter, func(t time.Time) tea.Msg {
			return previewStopMsg{gen: gen}
		})
	case "enter":
		req, err := m.sess.BeginConfirm()
		if err != nil {
			return m, m.setNotice(confirmError(err), true)
		}
		m.previewing = false
		m.logger.Info("cut submitted",
			"source", req.SourceLocator,
			"start", req.Start,
			"end", req.End,
			"title", req.Label)
		return m, m.cutCmd(req)
	}
	return m, nil
}

// adjustBound nudges a trim bound and reports failures as notices.
func (m *Model) adjustBound(bound session.Bound, delta float64) (tea.Model, tea.Cmd) {
	m.previewing = false
	if err := m.sess.Step(bound, delta); err != nil {
		return m, m.setNotice(setBoundError(err), true)
	}
	return m, nil
}

// setBoundError maps session editing errors to user-facing messages.
func setBoundError(err error) string {
	switch err {
	case session.ErrNotReady:
		return "Waiting for media duration"
	case session.ErrSubmissionInFlight:
		return "Cut in progress, please wait"
	default:
		return err.Error()
	}
}

// confirmError maps confirm errors to user-facing messages.
func confirmError(err error) string {
	switch err {
	case session.ErrIntervalTooShort:
		return fmt.Sprintf("Selection too short, needs more than %.1fs", session.MinCutLength)
	default:
		return setBoundError(err)
	}
}

// updateClipForm routes messages to the new-clip form and reacts when it finishes.
func (m *Model) updateClipForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.clipForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.clipForm = f
	}

	switch m.clipForm.State {
	case huh.StateCompleted:
		result := m.clipFormResult
		m.clipForm = nil
		m.trimMeta = result
		m.trimThumbnail = ""
		model, trimCmd := m.startTrim(result.VideoURL, result.Title, 0)
		return model, tea.Batch(trimCmd, m.infoCmd(result.VideoURL))
	case huh.StateAborted:
		m.clipForm = nil
		return m, nil
	}
	return m, cmd
}

// updateDeleteForm routes messages to the delete confirm form.
func (m *Model) updateDeleteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.deleteForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.deleteForm = f
	}

	switch m.deleteForm.State {
	case huh.StateCompleted:
		target := m.deleteTarget
		confirmed := m.deleteConfirmed
		m.deleteForm = nil
		m.deleteTarget = nil
		if !confirmed || target == nil {
			return m, nil
		}
		if err := db.DeleteClip(m.database, target.ID); err != nil {
			return m, m.setNotice("Delete failed: "+err.Error(), true)
		}
		m.loadClips()
		return m, m.setNotice(fmt.Sprintf("Deleted clip %d", target.ID), false)
	case huh.StateAborted:
		m.deleteForm = nil
		m.deleteTarget = nil
		return m, nil
	}
	return m, cmd
}

// startTrim launches mpv on the source and opens the trim view.
// endHint seeds the initial end bound once the source duration is known.
func (m *Model) startTrim(sourceURL, label string, endHint float64) (tea.Model, tea.Cmd) {
	proc, err := mpv.Launch(sourceURL)
	if err != nil {
		return m, m.setNotice("Failed to launch mpv: "+err.Error(), true)
	}

	m.playerCmd = proc
	m.player = mpv.NewClient(mpv.DefaultSocketPath)
	m.sess = session.New(session.Source{Locator: sourceURL, Label: label}, endHint, m.player)
	m.previewing = false
	m.statusBar = components.StatusBarState{Title: label}
	m.mode = viewTrim

	m.logger.Info("trim opened", "source", sourceURL)
	return m, nil
}

// leaveTrim tears down the player and returns to the library view.
func (m *Model) leaveTrim() {
	if m.player != nil {
		_ = m.player.Close()
		m.player = nil
	}
	if m.playerCmd != nil && m.playerCmd.Process != nil {
		_ = m.playerCmd.Process.Kill()
	}
	m.playerCmd = nil
	m.sess = nil
	m.previewing = false
	m.statusBar = components.StatusBarState{}
	m.mode = viewLibrary
}

// infoCmd looks up source metadata in the background.
func (m *Model) infoCmd(sourceURL string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		info, err := m.cutter.Info(ctx, sourceURL)
		return infoResultMsg{info: info, err: err}
	}
}

// handleInfoResult applies source metadata to the pending clip.
func (m *Model) handleInfoResult(msg infoResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Metadata is a nicety, trimming works without it
		m.logger.Warn("source info lookup failed", "error", msg.err)
		return m, nil
	}
	m.trimThumbnail = msg.info.Thumbnail
	if m.trimMeta.ShowTitle == "" {
		m.trimMeta.ShowTitle = msg.info.Title
	}
	return m, nil
}

// cutCmd submits the cut request in the background.
func (m *Model) cutCmd(req session.CutRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cutTimeout)
		defer cancel()
		locator, err := m.cutter.Cut(ctx, req.SourceLocator, req.Start, req.End, req.Label)
		return cutResultMsg{locator: locator, err: err}
	}
}

// handleCutResult finishes the cut submission: on success the clip is saved
// to the library and the trim view closes, on failure the session returns to
// editing with the selection intact.
func (m *Model) handleCutResult(msg cutResultMsg) (tea.Model, tea.Cmd) {
	if m.sess == nil {
		return m, nil
	}

	length := m.sess.Gap()
	m.sess.CompleteConfirm(msg.err)

	if msg.err != nil {
		m.logger.Error("cut failed", "error", msg.err)
		return m, m.setNotice("Cut failed: "+msg.err.Error(), true)
	}

	clip := db.Clip{
		Title:     m.trimMeta.Title,
		ShowTitle: m.trimMeta.ShowTitle,
		Thumbnail: m.trimThumbnail,
		Emotion:   m.trimMeta.Emotion,
		Category:  m.trimMeta.Category,
		VideoURL:  msg.locator,
		StartTime: 0,
		EndTime:   length,
	}
	id, err := db.InsertClip(m.database, clip)
	if err != nil {
		m.logger.Error("clip save failed", "error", err)
		m.leaveTrim()
		return m, m.setNotice("Clip cut but not saved: "+err.Error(), true)
	}

	m.logger.Info("clip saved", "id", id, "url", msg.locator)
	m.leaveTrim()
	m.loadClips()
	return m, m.setNotice(fmt.Sprintf("Clip %d saved (%.1fs)", id, length), false)
}

// updateStatusFromMpv polls mpv for current playback status and feeds the
// session the source duration once it is known.
func (m *Model) updateStatusFromMpv() {
	if m.player == nil {
		return
	}

	// The mpv socket appears shortly after launch, keep trying until it does
	if !m.player.IsConnected() {
		if err := m.player.Connect(); err != nil {
			return
		}
	}
	m.statusBar.Connected = true

	paused, err := m.player.GetPaused()
	if err == nil {
		m.statusBar.Paused = paused
	}

	timePos, err := m.player.GetTimePos()
	if err == nil {
		m.statusBar.TimePos = timePos
	}

	duration, err := m.player.GetDuration()
	if err == nil && duration > 0 {
		m.statusBar.Duration = duration
		if m.sess != nil {
			m.sess.ResolveDuration(duration)
		}
	}
}

// loadClips loads the clip library from the database, applying the title filter.
func (m *Model) loadClips() {
	if m.database == nil {
		return
	}

	clips, err := db.FilterClips(m.database, m.search.Input)
	if err != nil {
		m.logger.Error("clip list load failed", "error", err)
		return
	}

	items := make([]components.ClipItem, 0, len(clips))
	for _, c := range clips {
		items = append(items, components.ClipItem{
			ID:        c.ID,
			Title:     c.Title,
			ShowTitle: c.ShowTitle,
			Emotion:   c.Emotion,
			Category:  c.Category,
			Duration:  c.Duration(),
			VideoURL:  c.VideoURL,
		})
	}

	m.clipList.Items = items
	m.clipList.Filter = m.search.Input
	m.search.Matches = len(items)
	if m.clipList.SelectedIndex >= len(items) {
		m.clipList.SelectedIndex = 0
		m.clipList.ScrollOffset = 0
	}
}

// minTerminalWidth is the minimum terminal width for the layout.
const minTerminalWidth = 60

// View renders the current state of the model as a string.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	if m.width > 0 && m.width < minTerminalWidth {
		warningStyle := lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true)
		hintStyle := lipgloss.NewStyle().
			Foreground(styles.Slate400).
			Italic(true)
		return warningStyle.Render(fmt.Sprintf("Terminal too narrow (%d cols)", m.width)) + "\n" +
			hintStyle.Render(fmt.Sprintf("Minimum width: %d columns", minTerminalWidth)) + "\n" +
			hintStyle.Render("Please resize your terminal.")
	}

	if m.clipForm != nil {
		return m.renderForm(m.clipForm)
	}
	if m.deleteForm != nil {
		return m.renderForm(m.deleteForm)
	}

	if m.mode == viewTrim {
		return m.renderTrimView()
	}
	return m.renderLibraryView()
}

// renderForm renders a huh form centered in the window.
func (m *Model) renderForm(form *huh.Form) string {
	content := form.View()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderLibraryView renders the clip library view.
func (m *Model) renderLibraryView() string {
	var sections []string

	headerStyle := lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true).
		Width(m.width).
		Background(styles.Slate900)
	sections = append(sections, headerStyle.Render(" ClipHunter"))

	if m.searchActive || m.search.Input != "" {
		sections = append(sections, components.SearchInput(m.search, m.width, m.searchActive))
	}

	sections = append(sections, components.ClipList(m.clipList, m.width, !m.searchActive))
	sections = append(sections, components.Notice(m.notice, m.width))
	sections = append(sections, components.ControlsDisplay(components.LibraryControls(), m.width))

	return strings.Join(sections, "\n")
}

// renderTrimView renders the trim view for the open source.
func (m *Model) renderTrimView() string {
	var sections []string

	sections = append(sections, components.StatusBar(m.statusBar, m.width))

	var start, end, duration float64
	var submitting bool
	if m.sess != nil {
		start = m.sess.Start()
		end = m.sess.End()
		duration = m.sess.Duration()
		submitting = m.sess.State() == session.Submitting
	}
	sections = append(sections, components.TrimPanel(components.TrimPanelState{
		Start:      start,
		End:        end,
		Duration:   duration,
		TimePos:    m.statusBar.TimePos,
		Previewing: m.previewing,
		Submitting: submitting,
	}, m.width))

	// Clip metadata box
	labelStyle := lipgloss.NewStyle().Foreground(styles.Slate400).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(styles.Slate100)
	metaLines := []string{
		" " + labelStyle.Render("Title") + valueStyle.Render(m.trimMeta.Title),
		" " + labelStyle.Render("Show") + valueStyle.Render(m.trimMeta.ShowTitle),
		" " + labelStyle.Render("Emotion") + valueStyle.Render(m.trimMeta.Emotion),
		" " + labelStyle.Render("Category") + valueStyle.Render(m.trimMeta.Category),
	}
	sections = append(sections, components.RenderInfoBox("Clip", metaLines, m.width, false))

	sections = append(sections, components.Notice(m.notice, m.width))
	sections = append(sections, components.ControlsDisplay(components.TrimControls(), m.width))

	return strings.Join(sections, "\n")
}

// Run starts the Bubbletea program against the given configuration,
// database connection, and logger.
func Run(cfg *config.Config, database *sql.DB, logger *slog.Logger) error {
	policy := cutter.RetryPolicy{
		MaxAttempts: cfg.MaxAttempts(),
		BaseDelay:   cfg.RetryDelay(),
	}
	cut := cutter.NewClient(cfg.ServiceURL(), policy, logger)

	model := NewModel(cfg, database, cut, logger)
	model.loadClips()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunOpen starts the Bubbletea program directly in the trim view for the
// given source URL, skipping the library.
func RunOpen(cfg *config.Config, database *sql.DB, logger *slog.Logger, sourceURL, title string) error {
	policy := cutter.RetryPolicy{
		MaxAttempts: cfg.MaxAttempts(),
		BaseDelay:   cfg.RetryDelay(),
	}
	cut := cutter.NewClient(cfg.ServiceURL(), policy, logger)

	model := NewModel(cfg, database, cut, logger)
	model.loadClips()
	model.trimMeta = forms.ClipFormResult{VideoURL: sourceURL, Title: title}
	model.startTrim(sourceURL, title, 0)
	if model.mode != viewTrim {
		return fmt.Errorf("failed to open %s: %s", sourceURL, model.notice.Text)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
