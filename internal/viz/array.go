package viz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dynarray/internal/dynarray"
)

// MaxCells caps how many slots are drawn before the row is elided.
const MaxCells = 24

const barWidth = 20

// RenderArray draws a header, one cell per slot (live then slack) and a
// usage bar.
func RenderArray(values []int, capacity, growStep int) string {
	header := HeaderStyle.Render(fmt.Sprintf("len=%d cap=%d step=%d", len(values), capacity, growStep))

	if capacity == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, Subtle.Render("(no storage)"))
	}

	shown := min(capacity, MaxCells)
	cells := make([]string, 0, shown+1)
	for i := 0; i < shown; i++ {
		if i < len(values) {
			cells = append(cells, UsedCell.Render(strconv.Itoa(values[i])))
		} else {
			cells = append(cells, SlackCell.Render("·"))
		}
	}
	if capacity > shown {
		cells = append(cells, Subtle.Render(fmt.Sprintf(" +%d", capacity-shown)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, cells...)

	usage := float64(len(values)) / float64(capacity)
	bar := ProgressBar(usage, barWidth) + " " + MetricLabel.Render(fmt.Sprintf("%.0f%% used", usage*100))

	return lipgloss.JoinVertical(lipgloss.Left, header, row, bar)
}

func Array(arr *dynarray.DynamicArray[int]) string {
	return RenderArray(arr.Data(), arr.Capacity(), arr.GrowStep())
}

// Printer has the shape of a script print hook.
func Printer(w io.Writer, arr *dynarray.DynamicArray[int]) {
	fmt.Fprintln(w, Array(arr))
}

func RenderReport(applied, failed int) string {
	status := StatusOK.Render("ok")
	if failed > 0 {
		status = StatusFailed.Render(fmt.Sprintf("%d rejected", failed))
	}
	return fmt.Sprintf("%s %s  %s",
		MetricLabel.Render("applied"),
		MetricValue.Render(strconv.Itoa(applied)),
		status,
	)
}
