// Package tui implements the interactive preset browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oSoWoSo/neofetch/internal/config"
	"github.com/oSoWoSo/neofetch/internal/presets"
)

const stripeWidth = 24

// Model is the preset browser: a cursor list of every flag palette with
// a live preview pane. It records the user's requests and never starts
// the animation itself.
type Model struct {
	cursor  int
	presets []presets.Preset
	cfg     *config.Config
	cfgPath string

	width, height int
	status        string
	statusErr     bool

	// Animate is set when the user quit with a request to hand off to
	// the animation.
	Animate bool
}

// NewBrowser builds the browser with the cursor preselected on the
// configured favorite preset.
func NewBrowser(cfg *config.Config, cfgPath string) Model {
	m := Model{
		presets: presets.All,
		cfg:     cfg,
		cfgPath: cfgPath,
		width:   80,
		height:  24,
	}
	for i, p := range m.presets {
		if strings.EqualFold(p.Name, cfg.Preset) {
			m.cursor = i
			break
		}
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg.Preset = m.presets[m.cursor].Name
		if err := config.Save(m.cfgPath, m.cfg); err != nil {
			m.status, m.statusErr = "save failed: "+err.Error(), true
		} else {
			m.status, m.statusErr = "saved "+m.cfg.Preset+" as favorite", false
		}
	case "a":
		m.Animate = true
		return m, tea.Quit
	}
	return m, nil
}

// Selected returns the preset under the cursor.
func (m Model) Selected() presets.Preset {
	return m.presets[m.cursor]
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("PRIDE FLAGS") + "\n")
	b.WriteString("  " + subtitleStyle.Render(fmt.Sprintf("%d presets", len(m.presets))) + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewList(), m.viewPreview()))
	b.WriteString("\n" + m.viewFooter())
	return b.String()
}

func (m Model) viewList() string {
	start, end := m.listWindow()

	var b strings.Builder
	for i := start; i < end; i++ {
		p := m.presets[i]
		mark := " "
		if strings.EqualFold(p.Name, m.cfg.Preset) {
			mark = favoriteStyle.Render("♥")
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				cursorStyle.Render("▸"),
				selectedStyle.Render(fmt.Sprintf("%-14s", p.Name)),
				mark))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				itemStyle.Render(fmt.Sprintf("%-14s", p.Name)),
				mark))
		}
	}
	return b.String()
}

func (m Model) viewPreview() string {
	p := m.presets[m.cursor].WithLightness(m.cfg.Lightness)

	var b strings.Builder
	b.WriteString(selectedStyle.Render(m.presets[m.cursor].Name) + "\n\n")
	for _, c := range p.Colors {
		stripe := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Render(strings.Repeat(" ", stripeWidth))
		b.WriteString(stripe + "\n")
	}
	return previewBox.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewFooter() string {
	hints := "  " +
		keyStyle.Render("j/k") + hintStyle.Render(" navigate  ") +
		keyStyle.Render("enter") + hintStyle.Render(" save favorite  ") +
		keyStyle.Render("a") + hintStyle.Render(" animate  ") +
		keyStyle.Render("q") + hintStyle.Render(" quit")
	if m.status == "" {
		return hints + "\n"
	}
	style := statusStyle
	if m.statusErr {
		style = errorStyle
	}
	return hints + "\n\n  " + style.Render(m.status) + "\n"
}

// listWindow slides a viewport over the preset list so the cursor stays
// visible on short terminals.
func (m Model) listWindow() (int, int) {
	visible := m.height - 9
	if visible < 3 {
		visible = 3
	}
	if visible > len(m.presets) {
		visible = len(m.presets)
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	return start, start + visible
}
