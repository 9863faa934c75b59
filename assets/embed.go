package assets

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"golang.org/x/image/colornames"
)

const sampleRate = 44100

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

// Dir is where sound files named in specs are read from.
var Dir = "assets"

func audioCtx() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(sampleRate)
		}
	})
	return audioContext
}

// LoadAudioPlayer decodes a wav file from Dir and creates a player for it.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := os.ReadFile(filepath.Join(Dir, cleanAssetPath(path)))
	if err != nil {
		return nil, err
	}
	ctx := audioCtx()
	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}
	return ctx.NewPlayerFromBytes(b), nil
}

// ToneAudioPlayer creates a player for a synthesized sine blip of the given
// frequency (Hz) and length (seconds).
func ToneAudioPlayer(freq, seconds float64) *audio.Player {
	return audioCtx().NewPlayerFromBytes(Tone(freq, seconds, sampleRate))
}

// Tone renders a sine wave as 16-bit little-endian stereo PCM with a short
// linear fade at both ends.
func Tone(freq, seconds float64, rate int) []byte {
	if freq <= 0 || seconds <= 0 || rate <= 0 {
		return nil
	}
	n := int(seconds * float64(rate))
	fade := rate / 200
	if fade > n/2 {
		fade = n / 2
	}
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := 0.6
		switch {
		case i < fade:
			amp *= float64(i) / float64(fade)
		case i >= n-fade:
			amp *= float64(n-1-i) / float64(fade)
		}
		s := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
		lo, hi := byte(uint16(s)), byte(uint16(s)>>8)
		out[i*4] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}

var palette = map[string]color.Color{
	"floor":         colornames.Darkolivegreen,
	"wall":          colornames.Saddlebrown,
	"player":        colornames.Steelblue,
	"player_armed":  colornames.Crimson,
	"shadow":        colornames.Black,
	"weapon":        colornames.Gold,
	"projectile":    colornames.Orange,
	"flash":         colornames.White,
	"joystick_base": colornames.Gray,
	"joystick_knob": colornames.Lightgray,
	"attack_button": colornames.Indianred,
	"jump_button":   colornames.Mediumseagreen,
	"reload_button": colornames.Slateblue,
}

// Color returns the palette color for a sprite asset name. Unknown names
// render magenta so they stand out.
func Color(asset string) color.Color {
	if c, ok := palette[asset]; ok {
		return c
	}
	if c, ok := colornames.Map[strings.ToLower(asset)]; ok {
		return c
	}
	return colornames.Magenta
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
