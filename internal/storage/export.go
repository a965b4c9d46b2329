package storage

import (
	"encoding/json"
	"io"
	"math"
)

type ExportData struct {
	RunMetadata
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, states [][]float64, times []float64) error {
	data := ExportData{
		RunMetadata: *meta,
		Times:       times,
		States:      states,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Series extracts one column (atom index, component 0..3) from recorded states.
func Series(states [][]float64, atom, component int) []float64 {
	col := atom*len(columns) + component
	out := make([]float64, 0, len(states))
	for _, row := range states {
		if col < len(row) {
			out = append(out, row[col])
		}
	}
	return out
}

// Speeds returns |v| per frame for one atom.
func Speeds(states [][]float64, atom int) []float64 {
	vx := Series(states, atom, 2)
	vy := Series(states, atom, 3)
	out := make([]float64, len(vx))
	for i := range vx {
		if i < len(vy) {
			out[i] = math.Hypot(vx[i], vy[i])
		}
	}
	return out
}
