package component

import (
	"math"

	"github.com/milk9111/zebulew/common"
)

// Attribute is the property a Track writes.
type Attribute int

const (
	AttrX Attribute = iota
	AttrY
	AttrScaleX
	AttrScaleY
	AttrRotation
	AttrOpacity
)

type Easing int

const (
	EaseLinear Easing = iota
	EaseInOut
)

// Apply maps linear progress t in [0,1] through the easing curve.
func (e Easing) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch e {
	case EaseInOut:
		return 0.5 - 0.5*math.Cos(math.Pi*t)
	default:
		return t
	}
}

// Track interpolates one attribute from From to To over Duration seconds,
// starting Delay seconds into its timeline.
type Track struct {
	Attr     Attribute
	From     float64
	To       float64
	Delay    float64
	Duration float64
	Easing   Easing
}

// End is the timeline time at which the track finishes.
func (t Track) End() float64 {
	return t.Delay + t.Duration
}

// Started reports whether the track has begun at timeline time at. Tracks
// that have not started leave their attribute alone, so a later track on the
// same attribute can chain after an earlier one.
func (t Track) Started(at float64) bool {
	return at >= t.Delay
}

// Value samples the track at timeline time at. Before Delay the track holds
// From, after End it holds To.
func (t Track) Value(at float64) float64 {
	if at <= t.Delay {
		return t.From
	}
	if t.Duration <= 0 || at >= t.End() {
		return t.To
	}
	return common.Lerp(t.From, t.To, t.Easing.Apply((at-t.Delay)/t.Duration))
}

// Timeline is a named group of tracks advanced together.
type Timeline struct {
	Name    string
	Tracks  []Track
	Elapsed float64
}

// Duration is the end time of the longest track.
func (tl Timeline) Duration() float64 {
	d := 0.0
	for _, tr := range tl.Tracks {
		d = math.Max(d, tr.End())
	}
	return d
}

func (tl Timeline) Done() bool {
	return tl.Elapsed >= tl.Duration()
}

// Animator runs the timelines of one entity.
type Animator struct {
	Timelines []Timeline
}

// Play starts tl, replacing any running timeline with the same name.
func (a *Animator) Play(tl Timeline) {
	a.Stop(tl.Name)
	tl.Elapsed = 0
	a.Timelines = append(a.Timelines, tl)
}

// Stop drops the timeline called name without applying its end values.
func (a *Animator) Stop(name string) bool {
	for i := range a.Timelines {
		if a.Timelines[i].Name == name {
			a.Timelines = append(a.Timelines[:i], a.Timelines[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Animator) Playing(name string) bool {
	if a == nil {
		return false
	}
	for _, tl := range a.Timelines {
		if tl.Name == name {
			return true
		}
	}
	return false
}

var AnimatorComponent = NewComponent[Animator]()
