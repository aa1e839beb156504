package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

type pcmStream interface {
	io.ReadSeeker
	Length() int64
}

type decoder func(sampleRate int, src io.Reader) (pcmStream, error)

// decoders resample to the context rate, keyed by file extension.
var decoders = map[string]decoder{
	".wav": func(rate int, src io.Reader) (pcmStream, error) {
		s, err := wav.DecodeWithSampleRate(rate, src)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
	".ogg": func(rate int, src io.Reader) (pcmStream, error) {
		s, err := vorbis.DecodeWithSampleRate(rate, src)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
}

// AudioLoader opens the embedded sound files. Effects are decoded once and
// kept as raw PCM; music streams from the embedded file on every play.
type AudioLoader struct {
	ctx   *audio.Context
	clips map[string][]byte
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{ctx: ctx, clips: map[string][]byte{}}
}

func (l *AudioLoader) open(name string) (pcmStream, error) {
	dec, ok := decoders[strings.ToLower(path.Ext(name))]
	if !ok {
		return nil, fmt.Errorf("%s: unsupported audio format", name)
	}
	data, err := audioFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	s, err := dec(l.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return s, nil
}

// PreloadSFX decodes a sound effect into the clip cache.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.clips[name]; ok {
		return nil
	}
	s, err := l.open(name)
	if err != nil {
		return err
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	l.clips[name] = pcm
	return nil
}

// LoadSFX returns a fresh player over the cached clip, so the same effect
// can overlap itself.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	if err := l.PreloadSFX(name); err != nil {
		return nil, err
	}
	return l.ctx.NewPlayer(bytes.NewReader(l.clips[name]))
}

// LoadMusic returns a player that loops the track forever.
func (l *AudioLoader) LoadMusic(name string) (*audio.Player, error) {
	s, err := l.open(name)
	if err != nil {
		return nil, err
	}
	return l.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
}
