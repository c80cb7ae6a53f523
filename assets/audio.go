package assets

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/kallis-world/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// oscillator generates one raw note
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     config.Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

func newOscillator(tone config.Tone, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     tone.Freq,
		duration: rate.N(tone.Duration),
		wave:     tone.Wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(tone.Freq*1000) + int64(tone.Duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case config.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case config.WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case config.WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case config.WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a note in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, tone config.Tone, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(tone.Attack),
		release:  rate.N(tone.Release),
		total:    rate.N(tone.Duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// SynthesizeSFX renders the notes of a sound effect, played one after the
// other, as 16-bit little-endian stereo PCM.
func SynthesizeSFX(tones []config.Tone, sampleRate int, volume float64) ([]byte, error) {
	if len(tones) == 0 {
		return nil, fmt.Errorf("no tones to synthesize")
	}

	rate := beep.SampleRate(sampleRate)
	notes := make([]beep.Streamer, 0, len(tones))
	for _, tone := range tones {
		notes = append(notes, newEnvelope(newOscillator(tone, rate), tone, rate))
	}
	stream := newVolume(beep.Seq(notes...), volume)

	var out bytes.Buffer
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
				out.WriteByte(byte(s))
				out.WriteByte(byte(s >> 8))
			}
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("failed to synthesize: %w", err)
	}
	return out.Bytes(), nil
}

// AudioLoader synthesizes sound effects once and hands out players for them
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches its samples.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tones, ok := config.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tones for sound %d", id)
	}

	vol := 1.0
	if mult, ok := config.Sound.VolumeMultipliers[id]; ok {
		vol = mult
	}

	pcm, err := SynthesizeSFX(tones, l.context.SampleRate(), vol)
	if err != nil {
		return fmt.Errorf("sound %d: %w", id, err)
	}
	l.sfxCache[id] = pcm
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}
