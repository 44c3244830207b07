package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tranvictor/algosend/transfer"
)

const minWidth = 56

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("245"))
	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240"))
	focusedFieldStyle = fieldStyle.BorderForeground(lipgloss.Color("63"))
	buttonStyle       = lipgloss.NewStyle().
				Padding(0, 3).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("63"))
	disabledButtonStyle = buttonStyle.Background(lipgloss.Color("240"))
	helpStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	noticeStyles = map[transfer.NoticeKind]lipgloss.Style{
		transfer.NoticeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		transfer.NoticeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		transfer.NoticeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		transfer.NoticePending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
)

func (m *Model) View() string {
	if !m.dialog.IsOpen() {
		return ""
	}
	width := minWidth
	if m.width-6 > width {
		width = m.width - 6
	}
	inputWidth := width - labelStyle.GetWidth() - 6

	rows := []string{titleStyle.Render(m.dialog.Title()), ""}
	labels := [fieldCount]string{"Amount", "Receiver"}
	for i := range m.inputs {
		m.inputs[i].Width = inputWidth
		style := fieldStyle
		if i == m.focus {
			style = focusedFieldStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Bottom,
			labelStyle.Render(labels[i]),
			style.Width(inputWidth).Render(m.inputs[i].View()),
		))
	}

	button := buttonStyle
	if !m.dialog.CanSend() || m.resolving {
		button = disabledButtonStyle
	}
	rows = append(rows, "", button.Render(m.dialog.SendLabel()))

	if m.notice != nil {
		text := m.notice.Message
		if m.notice.Kind == transfer.NoticePending {
			text = m.spinner.View() + " " + text
		}
		rows = append(rows, "", noticeStyles[m.notice.Kind].Render(text))
	}

	help := []string{}
	for _, b := range keys.help() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	rows = append(rows, "", helpStyle.Render(strings.Join(help, " • ")))

	return modalStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
