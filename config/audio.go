package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCoin
	SoundJump
	SoundGameOver
	SoundLaser
)

// Wave is the oscillator shape used to synthesize a tone
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one note of a synthesized sound effect
type Tone struct {
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Wave     Wave
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to the notes they are built from
type SoundConfig struct {
	Tones             map[SoundID][]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID][]Tone{
			SoundCoin: {
				{Freq: 987.77, Duration: 70 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 20 * time.Millisecond, Wave: WaveSquare},
				{Freq: 1318.51, Duration: 160 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 120 * time.Millisecond, Wave: WaveSquare},
			},
			SoundJump: {
				{Freq: 330, Duration: 60 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 20 * time.Millisecond, Wave: WaveSquare},
				{Freq: 494, Duration: 80 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 60 * time.Millisecond, Wave: WaveSquare},
			},
			SoundGameOver: {
				{Freq: 392, Duration: 150 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond, Wave: WaveSaw},
				{Freq: 311, Duration: 150 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond, Wave: WaveSaw},
				{Freq: 196, Duration: 350 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 250 * time.Millisecond, Wave: WaveSaw},
			},
			SoundLaser: {
				{Freq: 1760, Duration: 40 * time.Millisecond, Attack: time.Millisecond, Release: 30 * time.Millisecond, Wave: WaveSquare},
				{Freq: 0, Duration: 60 * time.Millisecond, Attack: time.Millisecond, Release: 50 * time.Millisecond, Wave: WaveNoise},
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundLaser: 0.5,
		},
	}
}
