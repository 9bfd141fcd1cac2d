// Package metrics samples the surface and the stepper after every step.
package metrics

import "github.com/san-kum/stepviz/internal/anim"

// Metric measures one quantity at the current step.
type Metric interface {
	Name() string
	Observe(index int)
	Value() float64
}

// Sample is every metric's value at one step.
type Sample struct {
	Step      int
	Direction anim.Direction
	Values    []float64
}

// Recorder is an anim.Observer that samples its metrics on every transition.
type Recorder struct {
	metrics []Metric
	samples []Sample
}

func NewRecorder(metrics ...Metric) *Recorder {
	return &Recorder{metrics: metrics}
}

func (r *Recorder) Add(m Metric) { r.metrics = append(r.metrics, m) }

func (r *Recorder) OnStep(index int, dir anim.Direction) {
	r.record(index, dir)
}

// Sample records the current state outside of a transition, e.g. right after
// the stepper is built.
func (r *Recorder) Sample(index int) {
	r.record(index, anim.Forward)
}

func (r *Recorder) record(index int, dir anim.Direction) {
	s := Sample{Step: index, Direction: dir, Values: make([]float64, len(r.metrics))}
	for i, m := range r.metrics {
		m.Observe(index)
		s.Values[i] = m.Value()
	}
	r.samples = append(r.samples, s)
}

func (r *Recorder) Names() []string {
	names := make([]string, len(r.metrics))
	for i, m := range r.metrics {
		names[i] = m.Name()
	}
	return names
}

func (r *Recorder) Samples() []Sample { return r.samples }

// Series returns the named metric's value at every recorded sample. Samples
// taken before the metric was added read as zero.
func (r *Recorder) Series(name string) []float64 {
	col := -1
	for i, m := range r.metrics {
		if m.Name() == name {
			col = i
		}
	}
	if col < 0 {
		return nil
	}
	out := make([]float64, len(r.samples))
	for i, s := range r.samples {
		if col < len(s.Values) {
			out[i] = s.Values[col]
		}
	}
	return out
}
