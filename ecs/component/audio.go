package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named one-shot clips. Systems raise Play or Stop flags and the
// audio system drains them once per tick. Players may be nil when no audio
// device is available; the flags still work.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Request raises the Play flag of the clip called name.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n != name {
			continue
		}
		if i < len(a.Play) {
			a.Play[i] = true
			return true
		}
		return false
	}
	return false
}

// Requested reports whether the clip called name is waiting to play.
func (a *Audio) Requested(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			return a.Play[i]
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
