package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// DefaultScreenshotDir is where ctrl+s writes frames in local play.
const DefaultScreenshotDir = "~/.flappy/screenshots"

// helpHeight is the number of rows reserved under the playfield.
const helpHeight = 1

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game          *flappy.Game
	screen        *core.Screen
	store         *storage.Store
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	inputFrame    core.InputFrame
	gameState     core.GameState
	screenshotDir string // Empty disables screenshots
	quitting      bool
	runRecorded   bool // Whether the current run has been written to history
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithModelLogger sets the logger used for host events.
func WithModelLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithScreenshotDir sets where screenshots are written. An empty dir
// disables screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// NewModel creates a Bubble Tea model for the given game.
// store may be nil, in which case finished runs are not recorded.
func NewModel(game *flappy.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:         store,
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        log.New(io.Discard),
		inputFrame:    core.NewInputFrame(),
		screenshotDir: DefaultScreenshotDir,
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}
	m.gameState = game.State()
	return m
}

func playfieldHeight(h int) int {
	return max(h-helpHeight, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey collects intents for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else if path != "" {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)

	return m, nil
}

// handleResize rescales the playfield. The simulation works in world
// pixels, so the run continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame with the intents collected since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(now, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.runRecorded = false
	} else {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun writes a finished run to the history once.
// Runs that never scored are not recorded.
func (m *Model) recordRun() {
	if m.runRecorded {
		return
	}
	m.runRecorded = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("could not record run", "score", m.gameState.Score, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
// It returns the file path, or "" when screenshots are disabled.
func (m *Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", nil
	}
	dir, err := storage.ExpandHome(m.screenshotDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model options.
func Run(game *flappy.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
