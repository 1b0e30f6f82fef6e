package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/brot/internal/model"
)

type renderStartMsg struct {
	frame   m.Frame
	view    m.Viewport
	limit   int
	threads int
}

type renderProgressMsg struct {
	rowsDone  int
	rowsTotal int
}

type renderDoneMsg struct{}

var (
	renderTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("14")).
				Bold(true)
	renderCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11"))
)

// renderModel is the Bubble Tea model for the rendering progress bar.
type renderModel struct {
	bar       progress.Model
	title     string
	rowsDone  int
	rowsTotal int
}

func newRenderModel() renderModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 50

	return renderModel{bar: bar, title: "rendering"}
}

func (rm renderModel) Init() tea.Cmd {
	return nil
}

func (rm renderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return rm, tea.Quit
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > 0 {
			rm.bar.Width = width
		}

	case renderStartMsg:
		rm.title = fmt.Sprintf("rendering %dx%d, limit %d",
			msg.frame.Width, msg.frame.Height, msg.limit)
		rm.rowsDone = 0
		rm.rowsTotal = msg.frame.Height

	case renderProgressMsg:
		rm.rowsDone = msg.rowsDone
		rm.rowsTotal = msg.rowsTotal

		if msg.rowsTotal > 0 {
			return rm, rm.bar.SetPercent(float64(msg.rowsDone) / float64(msg.rowsTotal))
		}

	case renderDoneMsg:
		return rm, tea.Quit

	case progress.FrameMsg:
		bar, cmd := rm.bar.Update(msg)
		if b, ok := bar.(progress.Model); ok {
			rm.bar = b
		}

		return rm, cmd
	}

	return rm, nil
}

func (rm renderModel) View() string {
	rows := renderCountStyle.Render(fmt.Sprintf("%d/%d rows", rm.rowsDone, rm.rowsTotal))

	return fmt.Sprintf("%s\n%s %s\n",
		renderTitleStyle.Render(rm.title),
		rm.bar.View(),
		rows,
	)
}
