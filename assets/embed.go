package assets

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the rate of the shared audio context.
const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context, creating it on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// ChompPCM synthesises the bite click: a short falling square-ish tone with
// a noise burst, as 16-bit little-endian stereo PCM.
func ChompPCM(sampleRate int) []byte {
	const (
		duration = 0.09
		volume   = 0.35
	)
	n := int(float64(sampleRate) * duration)
	out := make([]byte, n*4)
	seed := uint32(0x2545f491)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := 420 - 2600*t
		phase += freq / float64(sampleRate)
		tone := math.Tanh(3 * math.Sin(2*math.Pi*phase))

		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		noise := float64(seed)/math.MaxUint32*2 - 1

		env := math.Exp(-t * 45)
		v := volume * env * (0.7*tone + 0.3*noise*math.Exp(-t*120))
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

// ChompPlayer returns a player for the chomp click.
func ChompPlayer() *audio.Player {
	ctx := AudioContext()
	return ctx.NewPlayerFromBytes(ChompPCM(ctx.SampleRate()))
}
