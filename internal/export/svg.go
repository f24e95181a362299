package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/dynarray/internal/trace"
)

const (
	capacityColor = "#00ccff"
	countColor    = "#00ff88"
)

// SamplesToSVG draws capacity as a step line and length as a straight
// line over the add index.
func SamplesToSVG(samples []trace.Sample, width, height int) string {
	if len(samples) == 0 {
		return ""
	}

	maxY := 1
	for _, s := range samples {
		maxY = max(maxY, s.Capacity)
	}

	scaleX := float64(width) / float64(len(samples))
	scaleY := float64(height) / (float64(maxY) * 1.1)
	y := func(v int) float64 {
		return float64(height) - float64(v)*scaleY
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// capacity holds until the next sample, so draw it as steps
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M0.0,%.1f`, capacityColor, y(samples[0].Capacity)))
	for i, s := range samples {
		x0 := float64(i) * scaleX
		x1 := float64(i+1) * scaleX
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f L%.1f,%.1f", x0, y(s.Capacity), x1, y(s.Capacity)))
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, countColor))
	for i, s := range samples {
		x := float64(i+1) * scaleX
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y(s.Count)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y(s.Count)))
		}
	}
	sb.WriteString("\"/>\n</svg>")

	return sb.String()
}
