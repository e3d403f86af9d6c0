package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/config"
	blockscore "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// Settings screen rows.
const (
	fieldSize = iota
	fieldUniform
	fieldRed
	fieldGreen
	fieldBlue
	fieldTheme
	fieldCount
)

var fieldNames = [fieldCount]string{"Board size", "Uniform color", "Red", "Green", "Blue", "Theme"}

var themeCycle = []string{config.ThemeDark, config.ThemeLight}

// SettingsKeyMap defines the key bindings for the settings screen.
type SettingsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Dec      key.Binding
	Inc      key.Binding
	FineDec  key.Binding
	FineInc  key.Binding
	Toggle   key.Binding
	Save     key.Binding
	Defaults key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Dec, k.Inc, k.Save, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dec, k.Inc, k.FineDec, k.FineInc},
		{k.Toggle, k.Save, k.Defaults, k.Back, k.Quit},
	}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
		Dec:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
		Inc:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
		FineDec:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "-1")),
		FineInc:  key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "+1")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Save:     key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "save")),
		Defaults: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "defaults")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "cancel")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// SaveFunc persists an edited configuration.
type SaveFunc func(config.BlocksConfig) error

// SettingsModel is the Bubble Tea model for the settings screen.
type SettingsModel struct {
	cfg      config.BlocksConfig
	original config.BlocksConfig
	save     SaveFunc
	cursor   int
	keys     SettingsKeyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	err      error
	saved    bool
	back     bool
	quitting bool
}

// NewSettingsModel creates a settings screen editing a copy of cfg.
// save may be nil, in which case changes are only returned.
func NewSettingsModel(cfg config.BlocksConfig, save SaveFunc, theme Theme, width, height int) SettingsModel {
	cfg = cloneConfig(cfg)
	if len(cfg.Colors.Block) != 3 {
		cfg.SetBlockColor(blockscore.DefaultSettings().BlockColor)
	}

	h := help.New()
	h.Width = width

	return SettingsModel{
		cfg:      cfg,
		original: cloneConfig(cfg),
		save:     save,
		keys:     DefaultSettingsKeyMap(),
		help:     h,
		theme:    theme,
		width:    width,
		height:   height,
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
		m.cfg = m.original
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		if err := m.commit(); err != nil {
			m.err = err
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Defaults):
		m.cfg = config.DefaultBlocksConfig()
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + fieldCount - 1) % fieldCount
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % fieldCount
	case key.Matches(msg, m.keys.Dec):
		m.adjust(-1, false)
	case key.Matches(msg, m.keys.Inc):
		m.adjust(1, false)
	case key.Matches(msg, m.keys.FineDec):
		m.adjust(-1, true)
	case key.Matches(msg, m.keys.FineInc):
		m.adjust(1, true)
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor == fieldUniform || m.cursor == fieldTheme {
			m.adjust(1, false)
		}
	}
	return m, nil
}

// adjust changes the focused field by dir steps. Color channels move by 5,
// or by 1 when fine is set.
func (m *SettingsModel) adjust(dir int, fine bool) {
	switch m.cursor {
	case fieldSize:
		m.cfg.Board.Size = clamp(m.cfg.Board.Size+dir, config.MinBoardSize, config.MaxBoardSize)
	case fieldUniform:
		m.cfg.Colors.Uniform = !m.cfg.Colors.Uniform
	case fieldRed, fieldGreen, fieldBlue:
		step := 5
		if fine {
			step = 1
		}
		i := m.cursor - fieldRed
		m.cfg.Colors.Block[i] = clamp(m.cfg.Colors.Block[i]+dir*step, 0, 255)
	case fieldTheme:
		idx := 0
		for i, name := range themeCycle {
			if name == m.cfg.Theme {
				idx = i
			}
		}
		m.cfg.Theme = themeCycle[(idx+dir+len(themeCycle))%len(themeCycle)]
		m.theme = ThemeFor(m.cfg.Theme)
	}
}

// commit validates and saves the edited configuration.
func (m *SettingsModel) commit() error {
	if err := m.cfg.Validate(); err != nil {
		return err
	}
	if m.save != nil {
		if err := m.save(m.cfg); err != nil {
			return err
		}
	}
	m.saved = true
	return nil
}

func cloneConfig(cfg config.BlocksConfig) config.BlocksConfig {
	cfg.Colors.Block = append([]int(nil), cfg.Colors.Block...)
	return cfg
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// value formats the focused field's current value.
func (m SettingsModel) value(field int) string {
	switch field {
	case fieldSize:
		return fmt.Sprintf("%dx%d", m.cfg.Board.Size, m.cfg.Board.Size)
	case fieldUniform:
		if m.cfg.Colors.Uniform {
			return "on"
		}
		return "off"
	case fieldRed, fieldGreen, fieldBlue:
		return fmt.Sprintf("%3d", m.cfg.Colors.Block[field-fieldRed])
	case fieldTheme:
		return m.cfg.Theme
	}
	return ""
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting || m.back || m.saved {
		return ""
	}

	var rows strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := fmt.Sprintf("%-14s", fieldNames[i])
		value := fmt.Sprintf("< %s >", m.value(i))
		if i == m.cursor {
			rows.WriteString(m.theme.ItemActive.Render("> " + label))
			rows.WriteString(m.theme.Value.Render(value))
		} else {
			rows.WriteString(m.theme.Item.Render("  " + label))
			rows.WriteString(m.theme.Item.Render(value))
		}
		rows.WriteString("\n")
	}

	c := m.cfg.BlockColor()
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).
		Render("      ")
	rows.WriteString("\n  Preview       " + swatch)
	if !m.cfg.Colors.Uniform {
		rows.WriteString(m.theme.Description.Render("  (random colors)"))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Border.Render(rows.String()), m.width))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(centerText(m.theme.Error.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Config returns the edited configuration.
func (m SettingsModel) Config() config.BlocksConfig {
	return m.cfg
}

// Saved reports whether the edits were committed.
func (m SettingsModel) Saved() bool {
	return m.saved
}

// SettingsResult holds the result of running the settings screen.
type SettingsResult struct {
	Config config.BlocksConfig
	Saved  bool
	Quit   bool
}

// RunSettings runs the settings screen.
func RunSettings(cfg config.BlocksConfig, save SaveFunc, theme Theme, width, height int) (SettingsResult, error) {
	p := tea.NewProgram(
		NewSettingsModel(cfg, save, theme, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SettingsResult{Config: cfg}, err
	}

	m, ok := finalModel.(SettingsModel)
	if !ok {
		return SettingsResult{Config: cfg, Quit: true}, nil
	}
	return SettingsResult{Config: m.Config(), Saved: m.Saved(), Quit: m.quitting}, nil
}
