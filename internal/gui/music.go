package gui

import (
	"math/rand/v2"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/pokedex/internal/game"
)

// musicPlayer streams one track at a time. A new request replaces the
// current track, so the last call wins.
type musicPlayer struct {
	paths  assetPaths
	rng    *rand.Rand
	volume float32

	current string
	stream  rl.Music
	playing bool
	enabled bool
}

func newMusicPlayer(paths assetPaths, rng *rand.Rand, volume float32) *musicPlayer {
	return &musicPlayer{paths: paths, rng: rng, volume: volume}
}

// Init opens the audio device. Without it every call is a no-op.
func (m *musicPlayer) Init() {
	rl.InitAudioDevice()
	m.enabled = rl.IsAudioDeviceReady()
}

func (m *musicPlayer) Close() {
	m.stop()
	if m.enabled {
		rl.CloseAudioDevice()
		m.enabled = false
	}
}

func (m *musicPlayer) PlayRegion(r game.Region) {
	if file := game.PickMusic(r, m.rng); file != "" {
		m.play(m.paths.music(file))
	}
}

// PlayMenu rotates through the menu tracks, avoiding an immediate repeat.
func (m *musicPlayer) PlayMenu() {
	m.play(nextMenuTrack(m.paths.menuMusic(), m.current, m.rng))
}

func nextMenuTrack(tracks []string, current string, rng *rand.Rand) string {
	var choices []string
	for _, t := range tracks {
		if t != current {
			choices = append(choices, t)
		}
	}
	if len(choices) == 0 {
		if len(tracks) > 0 {
			return tracks[0]
		}
		return ""
	}
	return choices[rng.IntN(len(choices))]
}

func (m *musicPlayer) play(path string) {
	if path == "" || !m.enabled {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	m.stop()
	m.stream = rl.LoadMusicStream(path)
	rl.SetMusicVolume(m.stream, m.volume)
	rl.PlayMusicStream(m.stream)
	m.current = path
	m.playing = true
}

func (m *musicPlayer) stop() {
	if !m.playing {
		return
	}
	rl.StopMusicStream(m.stream)
	rl.UnloadMusicStream(m.stream)
	m.playing = false
}

// Update refills the stream buffer. Call once per frame from every loop.
func (m *musicPlayer) Update() {
	if m.playing {
		rl.UpdateMusicStream(m.stream)
	}
}

func (m *musicPlayer) SetVolume(v float32) {
	m.volume = v
	if m.playing {
		rl.SetMusicVolume(m.stream, v)
	}
}

func (m *musicPlayer) Volume() float32 {
	return m.volume
}
