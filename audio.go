package puzzlebox

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SoundPlayer plays a sound by reference. Scenes log Play errors and carry
// on; a missing sound never breaks a puzzle.
type SoundPlayer interface {
	Play(ref string) error
}

// ErrUnsupportedAudio is returned for sound files that are not mp3, ogg or
// wav.
var ErrUnsupportedAudio = errors.New("unsupported audio format")

// EbitenAudio is the SoundPlayer backed by an ebiten audio context. Sounds
// are read from an fs.FS on first use and their players cached by ref.
type EbitenAudio struct {
	ctx     *audio.Context
	assets  fs.FS
	players map[string]*audio.Player

	// Volume is applied to every player before it starts, 0 to 1.
	Volume float64
}

// NewEbitenAudio creates a sound player reading refs from assets.
func NewEbitenAudio(ctx *audio.Context, assets fs.FS) *EbitenAudio {
	return &EbitenAudio{
		ctx:     ctx,
		assets:  assets,
		players: make(map[string]*audio.Player),
		Volume:  1,
	}
}

// Play rewinds and starts the sound stored at ref.
func (a *EbitenAudio) Play(ref string) error {
	p, err := a.player(ref)
	if err != nil {
		return err
	}
	p.SetVolume(a.Volume)
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("rewind %s: %w", ref, err)
	}
	p.Play()
	return nil
}

// Preload decodes refs ahead of time so the first Play does not stall.
func (a *EbitenAudio) Preload(refs ...string) error {
	for _, ref := range refs {
		if _, err := a.player(ref); err != nil {
			return err
		}
	}
	return nil
}

func (a *EbitenAudio) player(ref string) (*audio.Player, error) {
	if p, ok := a.players[ref]; ok {
		return p, nil
	}
	stream, err := a.decode(ref)
	if err != nil {
		return nil, err
	}
	p, err := a.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("create player for %s: %w", ref, err)
	}
	a.players[ref] = p
	return p, nil
}

func (a *EbitenAudio) decode(ref string) (io.Reader, error) {
	ext := strings.ToLower(path.Ext(ref))
	switch ext {
	case ".mp3", ".ogg", ".wav":
	default:
		return nil, fmt.Errorf("sound %s: %w", ref, ErrUnsupportedAudio)
	}

	data, err := fs.ReadFile(a.assets, ref)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", ref, err)
	}
	r := bytes.NewReader(data)

	var stream io.Reader
	switch ext {
	case ".mp3":
		stream, err = mp3.DecodeWithoutResampling(r)
	case ".ogg":
		stream, err = vorbis.DecodeWithoutResampling(r)
	case ".wav":
		stream, err = wav.DecodeWithoutResampling(r)
	}
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", ref, err)
	}
	return stream, nil
}
