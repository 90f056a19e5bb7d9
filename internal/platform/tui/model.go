package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-catcher/internal/core"
	"github.com/vovakirdan/tui-catcher/internal/registry"
	"github.com/vovakirdan/tui-catcher/internal/storage"
)

// CuePlayer consumes host-side cues such as sounds and music.
type CuePlayer interface {
	Handle(cues []core.Cue)
}

// ResultStore persists finished sessions.
type ResultStore interface {
	SaveResult(r storage.Result) (int64, error)
}

// Games may implement these to cooperate with the host.
type (
	resizer interface{ Resize(w, h int) }
	timer   interface{ Played() time.Duration }
)

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStore saves every finished session to s.
func WithStore(s ResultStore) ModelOption {
	return func(m *Model) { m.store = s }
}

// WithAudio forwards cues to p.
func WithAudio(p CuePlayer) ModelOption {
	return func(m *Model) { m.audio = p }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithEmbedded keeps the model running when the player asks to go back,
// so a parent model can switch screens.
func WithEmbedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// Model is the Bubble Tea model for running a catcher session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ResultStore
	audio      CuePlayer
	log        *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       HeldKeys
	pointer    core.Pointer
	clock      frameClock
	keyMapper  *KeyMapper
	gameState  core.GameState
	sessionID  string
	embedded   bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been saved for the current game over
	lastSaved  *storage.Result
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		log:        log.New(io.Discard),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		sessionID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.stopAudio()
		return m, tea.Quit
	case action == core.ActionLeft, action == core.ActionRight:
		m.held.Press(action, now)
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.stopAudio()
			if !m.embedded {
				return m, tea.Quit
			}
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse tracks the left button as a held pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointer = core.Pointer{Down: true, X: msg.X}
		}
	case tea.MouseActionMotion:
		if m.pointer.Down {
			m.pointer.X = msg.X
		}
	case tea.MouseActionRelease:
		m.pointer = core.Pointer{}
	}
}

// handleResize adapts the screen. Games that can resize keep their session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation step with the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.held.Apply(&m.inputFrame, now)
	m.inputFrame.Pointer = m.pointer
	m.inputFrame.Elapsed = m.clock.next(now, m.config.TickInterval())

	result := m.game.Step(m.inputFrame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	if m.audio != nil && len(result.Cues) > 0 {
		m.audio.Handle(result.Cues)
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveResult()
		m.scoreSaved = true
	case wasOver && !m.gameState.GameOver:
		// A restart began a new session.
		m.scoreSaved = false
		m.sessionID = uuid.NewString()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished session. Failures are logged only.
func (m *Model) saveResult() {
	r := storage.Result{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		Verdict:   m.gameState.Verdict,
	}
	if t, ok := m.game.(timer); ok {
		r.Duration = t.Played()
	}
	m.lastSaved = &r

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(r); err != nil {
		m.log.Warn("could not save result", "game", r.GameID, "err", err)
		return
	}
	m.log.Info("result saved", "game", r.GameID, "score", r.Score, "verdict", r.Verdict)
}

func (m *Model) stopAudio() {
	if m.audio != nil {
		m.audio.Handle([]core.Cue{core.CueMusicOff})
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".catcher", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot dir", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// LastResult returns the most recently finished session, if any.
func (m Model) LastResult() (storage.Result, bool) {
	if m.lastSaved == nil {
		return storage.Result{}, false
	}
	return *m.lastSaved, true
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
