package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chompSound plays the bite click through the system speaker.
type chompSound struct {
	ready bool
}

func newChompSound() (*chompSound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &chompSound{}, err
	}
	return &chompSound{ready: true}, nil
}

func (c *chompSound) Play() {
	if c == nil || !c.ready {
		return
	}
	s, err := chompStreamer()
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (c *chompSound) Close() {
	if c != nil && c.ready {
		speaker.Close()
	}
}

// chompStreamer is a short falling two-tone click.
func chompStreamer() (beep.Streamer, error) {
	hi, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return nil, err
	}
	lo, err := generators.SineTone(sampleRate, 330)
	if err != nil {
		return nil, err
	}
	return beep.Seq(
		beep.Take(sampleRate.N(30*time.Millisecond), hi),
		beep.Take(sampleRate.N(50*time.Millisecond), lo),
	), nil
}
