package system

import (
	"log"

	"github.com/milk9111/skelecursor/ecs"
)

// Sound is a rewindable one-shot sample.
type Sound interface {
	IsPlaying() bool
	Rewind() error
	Play()
}

// AudioSystem plays the chomp sound once per chomp event. A nil sound
// keeps it silent.
type AudioSystem struct {
	chomp Sound
}

func NewAudioSystem(chomp Sound) *AudioSystem {
	return &AudioSystem{chomp: chomp}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil || a.chomp == nil {
		return
	}
	if len(w.Events().Of(ecs.EventChomp)) == 0 {
		return
	}
	if err := a.chomp.Rewind(); err != nil {
		log.Printf("audio: %v", err)
		return
	}
	if !a.chomp.IsPlaying() {
		a.chomp.Play()
	}
}
