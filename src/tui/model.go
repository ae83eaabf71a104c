package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jinjor/terminal-piano/src/audio"
)

const tickInterval = 50 * time.Millisecond
const quitKey = "s"

// Instrument is what the shell drives.
type Instrument interface {
	Keys() []string
	NoteOn(key string, velocity float64) bool
	Level(key string) (audio.Level, bool)
	Errors() <-chan error
}

type tickMsg time.Time

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	quietStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	loudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Italic(true)
)

// Model renders one meter bar per playable key.
type Model struct {
	instrument Instrument
	keys       []string
	velocity   float64
	width      int
	lastErr    error
}

// NewModel ...
func NewModel(instrument Instrument, velocity float64, width int) Model {
	return Model{
		instrument: instrument,
		keys:       instrument.Keys(),
		velocity:   velocity,
		width:      width,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init ...
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update ...
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == quitKey || key == "ctrl+c" {
			return m, tea.Quit
		}
		m.instrument.NoteOn(key, m.velocity)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		m.drainErrors()
		return m, tick()
	}
	return m, nil
}

func (m *Model) drainErrors() {
	for {
		select {
		case err := <-m.instrument.Errors():
			m.lastErr = err
		default:
			return
		}
	}
}

// View ...
func (m Model) View() string {
	var b strings.Builder
	header := fmt.Sprintf("[ Terminal piano - keys: %s  |  ( %s to quit ) ]", strings.Join(m.keys, " "), quitKey)
	b.WriteString(headerStyle.Render(truncate(header, m.width-1)))
	b.WriteString("\n\n")
	maxWidth := maxBarWidth(m.width)
	for _, key := range m.keys {
		rms := 0.0
		if level, ok := m.instrument.Level(key); ok {
			rms = level.RMS
		}
		width := barWidth(rms, maxWidth)
		bar := strings.Repeat("█", width) + strings.Repeat(" ", maxWidth-width)
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-3s ", "["+key+"]")))
		b.WriteString(levelStyle(rms).Render(bar))
		b.WriteString(fmt.Sprintf(" %.3f\n", rms))
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(truncate(m.lastErr.Error(), m.width-1)))
		b.WriteString("\n")
	}
	return b.String()
}

func maxBarWidth(termWidth int) int {
	if w := termWidth - 20; w > 10 {
		return w
	}
	return 10
}

// barWidth scales rms so that roughly 0.17 fills the bar.
func barWidth(rms float64, maxWidth int) int {
	v := rms * 6.0
	if v > 1 {
		v = 1
	}
	if v < 0 {
		v = 0
	}
	return int(v * float64(maxWidth))
}

func levelStyle(rms float64) lipgloss.Style {
	switch {
	case rms < 0.08:
		return quietStyle
	case rms < 0.18:
		return mediumStyle
	}
	return loudStyle
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
