package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/fibzoom/internal/spiral"
)

// Trace is the per-frame statistics of one animation cycle.
type Trace struct {
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Step      float64      `json:"step"`
	Period    float64      `json:"reset_period"`
	BaseScale float64      `json:"base_scale"`
	Frames    []TraceFrame `json:"frames"`
}

type TraceFrame struct {
	Time        float64 `json:"time"`
	Scale       float64 `json:"scale"`
	Visible     int     `json:"visible"`
	Labels      int     `json:"labels"`
	CulledSmall int     `json:"culled_small"`
	StoppedAt   int     `json:"stopped_at"`
}

// CycleTrace steps the clock from zero until it wraps and records every frame
// composed on the way.
func CycleTrace(p spiral.Params, viewport spiral.Rect) Trace {
	t := Trace{
		Width:     viewport.Width(),
		Height:    viewport.Height(),
		Step:      p.Step,
		Period:    p.ResetPeriod,
		BaseScale: p.BaseScale,
	}
	if p.Validate() != nil {
		return t
	}

	var clock spiral.Clock
	for {
		frame, next := spiral.Step(clock, viewport, p)
		if clock.Wrapped(next) {
			break
		}
		clock = next
		st := frame.Stats
		t.Frames = append(t.Frames, TraceFrame{
			Time:        clock.Time,
			Scale:       st.Scale,
			Visible:     st.Visible,
			Labels:      st.Labels,
			CulledSmall: st.CulledSmall,
			StoppedAt:   st.StoppedAt,
		})
	}
	return t
}

// Series returns the visible and label counts of every frame.
func (t Trace) Series() (visible, labels []float64) {
	visible = make([]float64, len(t.Frames))
	labels = make([]float64, len(t.Frames))
	for i, f := range t.Frames {
		visible[i] = float64(f.Visible)
		labels[i] = float64(f.Labels)
	}
	return visible, labels
}

func EncodeJSON(w io.Writer, t Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

func WriteJSON(path string, t Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeJSON(file, t)
}
