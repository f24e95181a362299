// Package export writes saved growth traces as JSON documents or SVG
// step charts.
package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/dynarray/internal/storage"
	"github.com/san-kum/dynarray/internal/trace"
)

type ExportData struct {
	ID              string         `json:"id"`
	InitialCapacity int            `json:"initial_capacity"`
	GrowStep        int            `json:"grow_step"`
	Adds            int            `json:"adds"`
	FinalCapacity   int            `json:"final_capacity"`
	Reallocs        int            `json:"reallocs"`
	Utilization     float64        `json:"utilization"`
	Samples         []trace.Sample `json:"samples"`
}

func NewExportData(meta *storage.RunMetadata, samples []trace.Sample) ExportData {
	return ExportData{
		ID:              meta.ID,
		InitialCapacity: meta.InitialCapacity,
		GrowStep:        meta.GrowStep,
		Adds:            meta.Samples,
		FinalCapacity:   meta.FinalCapacity,
		Reallocs:        meta.Reallocs,
		Utilization:     meta.Utilization,
		Samples:         samples,
	}
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
