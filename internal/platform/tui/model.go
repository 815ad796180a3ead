package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/topic-arcade/internal/assets"
	"github.com/akarpov/topic-arcade/internal/core"
	"github.com/akarpov/topic-arcade/internal/registry"
	"github.com/akarpov/topic-arcade/internal/storage"
)

// assetLoadTimeout bounds the whole theme fetch, including retries against
// the fallback source.
const assetLoadTimeout = 30 * time.Second

// themeMsg delivers the resolved topic assets once loading finishes.
// Loading never fails outright; missing assets arrive as placeholders.
type themeMsg struct {
	theme *core.Theme
}

// Model is the Bubble Tea model that runs a single game session. It starts
// in a loading state while topic assets resolve, then drives the game's
// declared clock until the user quits.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	loader     *assets.Loader
	config     core.RuntimeConfig
	clock      core.ClockSpec
	keyMapper  *KeyMapper
	swipe      SwipeTracker
	inputFrame core.InputFrame
	gameState  core.GameState

	loading    bool
	lastTick   time.Time
	resizeTo   *tea.WindowSizeMsg // Coalesced; only the latest size is applied
	quitting   bool
	scoreSaved bool // Whether the score has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, loader *assets.Loader, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Topic == "" {
		cfg.Topic = assets.DefaultTopic
	}

	// The stored high score seeds the HUD; a read failure just shows 0
	if store != nil {
		if hs, err := store.HighScore(game.ID(), cfg.Topic); err == nil {
			cfg.HighScore = hs
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		loader:     loader,
		config:     cfg,
		clock:      game.Clock(),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loading:    true,
	}
}

// Init starts asset loading; the tick loop begins once the theme arrives.
func (m Model) Init() tea.Cmd {
	return m.loadThemeCmd()
}

// loadThemeCmd resolves the three topic assets off the update loop.
func (m Model) loadThemeCmd() tea.Cmd {
	loader := m.loader
	topic := m.config.Topic
	return func() tea.Msg {
		if loader == nil {
			return themeMsg{theme: core.DefaultTheme()}
		}
		ctx, cancel := context.WithTimeout(context.Background(), assetLoadTimeout)
		defer cancel()
		return themeMsg{theme: loader.LoadTheme(ctx, topic)}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action, ok := m.swipe.Track(msg); ok {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case themeMsg:
		return m.handleThemeLoaded(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleThemeLoaded leaves the loading state and starts the simulation.
func (m Model) handleThemeLoaded(msg themeMsg) (tea.Model, tea.Cmd) {
	m.config.Theme = msg.theme
	m.loading = false

	m.applyPendingResize()
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	m.lastTick = time.Now()
	return m, tickCmd(clockInterval(m.clock, m.config.TickRate))
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize records the latest window size. Sizes are applied on the
// next tick so a burst of resize events costs a single buffer reallocation.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.resizeTo = &msg
	if m.loading {
		m.applyPendingResize()
	}
	return m, nil
}

func (m *Model) applyPendingResize() {
	if m.resizeTo == nil {
		return
	}
	m.config.ScreenW = m.resizeTo.Width
	m.config.ScreenH = m.resizeTo.Height
	m.screen.Resize(m.resizeTo.Width, m.resizeTo.Height)
	m.resizeTo = nil
}

// handleTick runs one simulation step and schedules the next tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	m.applyPendingResize()

	// Fixed-period games step by their declared interval; frame games get
	// the measured delta, which they clamp against long stalls themselves.
	var dt float64
	if m.clock.Mode == core.ClockFixed {
		dt = m.clock.Interval.Seconds()
	} else {
		dt = msg.At.Sub(m.lastTick).Seconds()
	}
	m.lastTick = msg.At

	wasOver := m.gameState.GameOver
	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.recordScore()
	}
	if !m.gameState.GameOver && wasOver {
		// The game restarted itself; arm persistence for the next run
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(clockInterval(m.clock, m.config.TickRate))
}

// recordScore persists the final score once per game over; the store only
// keeps it when it beats the old high score.
func (m *Model) recordScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.RecordScore(m.game.ID(), m.config.Topic, m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.loading {
		return m.loadingView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// loadingView is shown while topic assets resolve.
func (m Model) loadingView() string {
	m.screen.Clear()
	mid := m.screen.Height() / 2
	m.screen.DrawTextCentered(mid, fmt.Sprintf("Loading %q assets...", m.config.Topic))
	m.screen.DrawTextCentered(mid+2, "press q to quit")
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single game session.
func Run(game registry.Game, store *storage.Store, loader *assets.Loader, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, loader, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press-release pairs become taps and swipes
	)

	_, err := p.Run()
	return err
}
