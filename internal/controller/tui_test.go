package controller

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/brot/internal/model"
)

func newTestTUI() (*TUI, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	tui := NewTUI(buf)
	tui.programOptions = []tea.ProgramOption{tea.WithInput(&bytes.Buffer{})}

	return tui, buf
}

func TestTUI_SummaryWritesStopTheProgramFirst(t *testing.T) {
	tui, buf := newTestTUI()
	require.NoError(t, tui.Start())

	tui.DisplayRenderStart(m.Frame{Width: 8, Height: 4}, m.Viewport{}, 32, 1)
	tui.DisplayProgress(2, 4)

	// Direct writes must not race the program's repaints: the histogram
	// stops the program and waits for it before touching the output.
	require.NoError(t, tui.DisplayHistogram([]m.Bucket{{From: 0, To: 8, Count: 3}}, 1, 4))
	assert.Nil(t, tui.program, "progress program still running during direct writes")

	tui.DisplayDone(m.Path("out.png"), 1500*time.Millisecond)
	tui.Close()

	out := buf.String()
	assert.Contains(t, out, "inconclusive 1 of 4")
	assert.Contains(t, out, "out.png")
}

func TestTUI_DisplayDoneStopsTheProgram(t *testing.T) {
	tui, buf := newTestTUI()
	require.NoError(t, tui.Start())

	tui.DisplayDone(m.Path("out.png"), time.Second)
	assert.Nil(t, tui.program)
	assert.Contains(t, buf.String(), "Wrote out.png")
}

func TestTUI_CloseIsIdempotent(t *testing.T) {
	tui, _ := newTestTUI()
	require.NoError(t, tui.Start())

	tui.Close()
	tui.Close()
	assert.Nil(t, tui.program)
}

func TestTUI_DisplayProbeWithoutStart(t *testing.T) {
	tui, buf := newTestTUI()

	tui.DisplayProbe(complex(3, 0), 100, m.Escape{Iteration: 0, Escaped: true})

	assert.Contains(t, buf.String(), "escaped at iteration 0")
}
