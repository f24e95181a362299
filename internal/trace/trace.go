// Package trace records how a DynamicArray's capacity follows its length
// under repeated Add calls.
package trace

import (
	"fmt"

	"github.com/san-kum/dynarray/internal/dynarray"
)

type Sample struct {
	Count    int `json:"count"`
	Capacity int `json:"capacity"`
}

// Slack is the number of allocated but unused slots.
func (s Sample) Slack() int {
	return s.Capacity - s.Count
}

type Trace struct {
	InitialCapacity int
	GrowStep        int
	Samples         []Sample
	Reallocs        int
}

// Record adds n elements to a fresh array and samples after every add.
func Record(initialCapacity, growStep, n int) (*Trace, error) {
	if n < 0 {
		return nil, fmt.Errorf("trace: negative sample count %d", n)
	}
	arr, err := dynarray.New[int](initialCapacity, growStep)
	if err != nil {
		return nil, err
	}

	tr := &Trace{
		InitialCapacity: initialCapacity,
		GrowStep:        growStep,
		Samples:         make([]Sample, 0, n),
	}
	last := arr.Capacity()
	for i := 0; i < n; i++ {
		arr.Add(i)
		if c := arr.Capacity(); c != last {
			tr.Reallocs++
			last = c
		}
		tr.Samples = append(tr.Samples, Sample{Count: arr.Len(), Capacity: arr.Capacity()})
	}
	return tr, nil
}

func (t *Trace) Capacities() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = float64(s.Capacity)
	}
	return out
}

func (t *Trace) Counts() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = float64(s.Count)
	}
	return out
}

func (t *Trace) Slack() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = float64(s.Slack())
	}
	return out
}

// FinalCapacity is the capacity after the last sample, or the initial
// capacity for an empty trace.
func (t *Trace) FinalCapacity() int {
	if len(t.Samples) == 0 {
		return t.InitialCapacity
	}
	return t.Samples[len(t.Samples)-1].Capacity
}

// Utilization is the mean fraction of allocated slots in use.
func (t *Trace) Utilization() float64 {
	if len(t.Samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range t.Samples {
		sum += float64(s.Count) / float64(s.Capacity)
	}
	return sum / float64(len(t.Samples))
}
