package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/stagedash/internal/presentation/tui"
	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/aretw0/stagedash/pkg/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stagePanel(x, y, w, h int, title, status string) domain.Panel {
	s := domain.ParseExecutionStatus(status)
	return render.StagePanel(title, &s).At(domain.NewRect(x, y, w, h))
}

func TestCanvas_ThickBorderWithTitle(t *testing.T) {
	c := tui.NewCanvas(10, 4)
	require.NoError(t, c.Draw(stagePanel(0, 0, 10, 4, "Build", "Succeeded")))

	want := strings.Join([]string{
		"┏Build━━━┓",
		"┃        ┃",
		"┃        ┃",
		"┗━━━━━━━━┛",
	}, "\n")
	assert.Equal(t, want, c.String())

	color, bold := c.StyleAt(1, 0)
	assert.Equal(t, domain.ColorDefault, color)
	assert.True(t, bold)

	color, bold = c.StyleAt(0, 0)
	assert.Equal(t, domain.ColorGreen, color)
	assert.False(t, bold)
}

func TestCanvas_TitleIsTruncated(t *testing.T) {
	c := tui.NewCanvas(6, 3)
	require.NoError(t, c.Draw(stagePanel(0, 0, 6, 3, "Deployment", "Failed")))

	assert.Equal(t, "┏Depl┓", strings.Split(c.String(), "\n")[0])
}

func TestCanvas_ASCII(t *testing.T) {
	c := tui.NewCanvas(5, 3, tui.WithASCII(true))
	require.NoError(t, c.Draw(render.SectionPanel("S").At(domain.NewRect(0, 0, 5, 3))))

	want := strings.Join([]string{
		"+S--+",
		"|   |",
		"+---+",
	}, "\n")
	assert.Equal(t, want, c.String())
}

func TestCanvas_ClipsAndIgnoresEmpty(t *testing.T) {
	c := tui.NewCanvas(4, 2)

	require.NoError(t, c.Draw(stagePanel(2, 0, 5, 5, "", "Succeeded")))
	require.NoError(t, c.Draw(stagePanel(0, 0, 0, 3, "Ghost", "Failed")))
	require.NoError(t, c.Draw(render.PlaceholderPanel().At(domain.NewRect(0, 0, 4, 2))))

	want := strings.Join([]string{
		"  ┏━",
		"  ┃ ",
	}, "\n")
	assert.Equal(t, want, c.String())
}

func TestCanvas_LaterDrawsWin(t *testing.T) {
	c := tui.NewCanvas(4, 3)
	require.NoError(t, c.Draw(stagePanel(0, 0, 4, 3, "", "Succeeded")))
	require.NoError(t, c.Draw(stagePanel(0, 0, 4, 3, "", "Failed")))

	color, _ := c.StyleAt(0, 0)
	assert.Equal(t, domain.ColorRed, color)
}

func TestCanvas_FullFrame(t *testing.T) {
	c := tui.NewCanvas(120, 40)
	stages := []domain.Stage{
		domain.NewStage("Build", "Succeeded"),
		domain.NewStage("Test", "Failed"),
		domain.NewStage("Deploy", ""),
	}
	_, err := render.Paint(c, stages)
	require.NoError(t, err)

	assert.Equal(t, '┏', c.Rune(1, 1))
	assert.Equal(t, 'S', c.Rune(2, 1))
	assert.Equal(t, '┏', c.Rune(1, 20))
	assert.Equal(t, 'C', c.Rune(2, 20))

	assert.Equal(t, '┏', c.Rune(2, 2))
	assert.Equal(t, 'B', c.Rune(3, 2))
	assert.Equal(t, '┏', c.Rune(40, 2))
	assert.Equal(t, 'T', c.Rune(41, 2))
	assert.Equal(t, '┏', c.Rune(79, 2))
	assert.Equal(t, 'D', c.Rune(80, 2))

	color, _ := c.StyleAt(79, 2)
	assert.Equal(t, domain.ColorRed, color)
	color, _ = c.StyleAt(1, 1)
	assert.Equal(t, domain.ColorAccent, color)
}

func TestCanvas_RenderPlain(t *testing.T) {
	c := tui.NewCanvas(6, 3)
	require.NoError(t, c.Draw(stagePanel(0, 0, 6, 3, "Go", "InProgress")))

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, c.String(), buf.String())
}

func TestCanvas_RenderColour(t *testing.T) {
	c := tui.NewCanvas(6, 3, tui.WithProfile(termenv.ANSI256))
	require.NoError(t, c.Draw(stagePanel(0, 0, 6, 3, "Go", "InProgress")))

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Go")
	assert.Equal(t, 2, strings.Count(out, "\n"))

	color, bold := c.StyleAt(2, 0)
	assert.Equal(t, domain.ColorDefault, color)
	assert.True(t, bold)
	color, _ = c.StyleAt(0, 0)
	assert.Equal(t, domain.ColorLightBlue, color)
}

func TestTerminalColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("1"), tui.TerminalColor(domain.ColorRed))
	assert.Equal(t, lipgloss.Color("2"), tui.TerminalColor(domain.ColorGreen))
	assert.Equal(t, lipgloss.Color("12"), tui.TerminalColor(domain.ColorLightBlue))
	assert.Equal(t, lipgloss.Color("11"), tui.TerminalColor(domain.ColorLightYellow))
	assert.Equal(t, lipgloss.Color("#FFB266"), tui.TerminalColor(domain.ColorAccent))
	assert.Equal(t, lipgloss.NoColor{}, tui.TerminalColor(domain.ColorDefault))
}
