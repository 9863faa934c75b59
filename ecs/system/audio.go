package system

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// AudioSystem drains Play and Stop requests. A clip requested again while it
// plays restarts from the beginning.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, clips *component.Audio) {
		for i := range clips.Names {
			player := clipPlayer(clips, i)
			if drain(clips.Stop, i) && player != nil && player.IsPlaying() {
				player.Pause()
			}
			if !drain(clips.Play, i) || player == nil {
				continue
			}
			if i < len(clips.Volume) {
				player.SetVolume(clips.Volume[i])
			}
			if err := player.SetPosition(0); err != nil {
				continue
			}
			player.Play()
		}
	})
}

func clipPlayer(clips *component.Audio, i int) *audio.Player {
	if i >= len(clips.Players) {
		return nil
	}
	return clips.Players[i]
}

// drain reports whether flags[i] was set and clears it.
func drain(flags []bool, i int) bool {
	if i >= len(flags) || !flags[i] {
		return false
	}
	flags[i] = false
	return true
}
