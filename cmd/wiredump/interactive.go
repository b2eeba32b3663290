package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	err      error
	filename string
	msgType  string
	fields   []string
	hex      viewport.Model
	ready    bool
	data     []byte
}

func newInspectorModel(filename, msgType string, data []byte) *inspectorModel {
	m := &inspectorModel{
		filename: filename,
		msgType:  msgType,
		data:     data,
	}
	m.fields, m.err = describe(msgType, data)
	return m
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := len(m.fields) + 4
		if m.err != nil {
			headerHeight = 5
		}
		if !m.ready {
			m.hex = viewport.New(msg.Width, msg.Height-headerHeight-1)
			m.hex.SetContent(hexDump(m.data))
			m.ready = true
		} else {
			m.hex.Width = msg.Width
			m.hex.Height = msg.Height - headerHeight - 1
		}
	}

	var cmd tea.Cmd
	m.hex, cmd = m.hex.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("wiredump — %s (%s, %d bytes)",
		m.filename, m.msgType, len(m.data))))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("decode failed: " + m.err.Error()))
		b.WriteString("\n\n")
	} else {
		for _, field := range m.fields {
			b.WriteString(fieldStyle.Render("  " + field))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	if m.ready {
		b.WriteString(m.hex.View())
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("  ↑/↓ scroll hex · q quit"))
	return b.String()
}

// hexDump renders the buffer 16 bytes per line with offsets and an
// ASCII column.
func hexDump(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]

		b.WriteString(offsetStyle.Render(fmt.Sprintf("%08x", off)))
		b.WriteString("  ")
		for i := 0; i < 16; i++ {
			if i < len(row) {
				fmt.Fprintf(&b, "%02x ", row[i])
			} else {
				b.WriteString("   ")
			}
			if i == 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(" |")
		for _, c := range row {
			if c >= 0x20 && c < 0x7F {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}

func runInteractive(filename, msgType string, data []byte) error {
	p := tea.NewProgram(newInspectorModel(filename, msgType, data), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
