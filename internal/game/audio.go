package game

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the rate the audio context runs at and the synthesized
// PCM is generated for.
const SampleRate = 44100

// Sound effect identifiers.
const (
	soundPaddle = "paddle"
	soundWall   = "wall"
	soundScore  = "score"
	soundStun   = "stun"
)

// AudioManager owns the audio context, the looped menu music and a small
// cache of synthesized effect players. Everything is generated PCM; there
// are no audio assets on disk.
type AudioManager struct {
	ctx      *audio.Context
	settings *SettingsManager

	music  *audio.Player
	sounds map[string]*audio.Player
}

func NewAudioManager(ctx *audio.Context, settings *SettingsManager) *AudioManager {
	return &AudioManager{
		ctx:      ctx,
		settings: settings,
		sounds:   make(map[string]*audio.Player),
	}
}

// PlayMusic starts the background loop, building it on first use. Calling
// it again while the loop plays is a no-op.
func (am *AudioManager) PlayMusic() {
	if am == nil || am.ctx == nil {
		return
	}
	s := am.settings.GetSettings()
	if !s.MusicEnabled {
		return
	}
	if am.music == nil {
		pcm := synthMusicPCM()
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := am.ctx.NewPlayer(loop)
		if err != nil {
			log.Printf("[AudioManager] music player: %v", err)
			return
		}
		am.music = p
	}
	am.music.SetVolume(s.MusicVolume)
	if !am.music.IsPlaying() {
		am.music.Play()
	}
}

// StopMusic pauses the loop; PlayMusic resumes it where it left off.
func (am *AudioManager) StopMusic() {
	if am == nil || am.music == nil {
		return
	}
	am.music.Pause()
}

// PlaySound fires one effect from the cache, synthesizing it on first use.
func (am *AudioManager) PlaySound(id string) {
	if am == nil || am.ctx == nil {
		return
	}
	s := am.settings.GetSettings()
	if !s.SoundEnabled {
		return
	}
	p, ok := am.sounds[id]
	if !ok {
		pcm := synthEffectPCM(id)
		if pcm == nil {
			return
		}
		player, err := am.ctx.NewPlayer(bytes.NewReader(pcm))
		if err != nil {
			log.Printf("[AudioManager] sound player %q: %v", id, err)
			return
		}
		am.sounds[id] = player
		p = player
	}
	p.SetVolume(s.SoundVolume)
	if err := p.Rewind(); err != nil {
		log.Printf("[AudioManager] rewind %q: %v", id, err)
	}
	p.Play()
}

// --- PCM synthesis ---

// appendSquare writes dur seconds of a square wave at freq into buf as
// 16-bit little-endian stereo. freq 0 writes silence.
func appendSquare(buf []byte, freq, dur, vol float64) []byte {
	n := int(dur * SampleRate)
	for i := 0; i < n; i++ {
		var v int16
		if freq > 0 {
			phase := math.Mod(float64(i)*freq/SampleRate, 1)
			amp := vol * 0.25 * math.MaxInt16
			if phase < 0.5 {
				v = int16(amp)
			} else {
				v = int16(-amp)
			}
		}
		lo, hi := byte(v), byte(v>>8)
		buf = append(buf, lo, hi, lo, hi)
	}
	return buf
}

// musicRiff is the menu loop: a two-bar square-wave arpeggio.
var musicRiff = []struct {
	freq  float64
	beats int
}{
	{220.00, 2}, {261.63, 1}, {329.63, 1}, {440.00, 2}, {329.63, 1}, {261.63, 1},
	{246.94, 2}, {293.66, 1}, {369.99, 1}, {493.88, 2}, {369.99, 1}, {293.66, 1},
}

const musicBeat = 0.15 // seconds per beat

func synthMusicPCM() []byte {
	var buf []byte
	for _, note := range musicRiff {
		buf = appendSquare(buf, note.freq, musicBeat*float64(note.beats), 0.5)
	}
	return buf
}

func synthEffectPCM(id string) []byte {
	switch id {
	case soundPaddle:
		return appendSquare(nil, 880, 0.06, 0.8)
	case soundWall:
		return appendSquare(nil, 440, 0.05, 0.6)
	case soundScore:
		buf := appendSquare(nil, 523.25, 0.10, 0.8)
		return appendSquare(buf, 783.99, 0.14, 0.8)
	case soundStun:
		buf := appendSquare(nil, 600, 0.08, 0.8)
		buf = appendSquare(buf, 420, 0.08, 0.8)
		return appendSquare(buf, 300, 0.12, 0.8)
	default:
		return nil
	}
}

// soundCues turns tick-to-tick match deltas into effect triggers. Scenes
// keep one per match and call emit after every step.
type soundCues struct {
	stats       MatchStats
	playerScore int
	botScore    int
}

func (sc *soundCues) emit(m *Match, am *AudioManager) {
	st := m.Stats()
	if st.PaddleBounces > sc.stats.PaddleBounces {
		am.PlaySound(soundPaddle)
	}
	if st.WallBounces > sc.stats.WallBounces {
		am.PlaySound(soundWall)
	}
	if st.StunsInflicted > sc.stats.StunsInflicted {
		am.PlaySound(soundStun)
	}
	p, b := m.Score().Player(), m.Score().Bot()
	if p > sc.playerScore || b > sc.botScore {
		am.PlaySound(soundScore)
	}
	sc.stats = st
	sc.playerScore, sc.botScore = p, b
}
