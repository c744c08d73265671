// Package audio loads songs into memory and plays them back through the
// system speaker.
package audio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

type decoder func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// decoders maps a lower-case file extension to its decoder.
var decoders = map[string]decoder{
	".wav": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(f)
	},
	".mp3": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return mp3.Decode(f)
	},
	".flac": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return flac.Decode(f)
	},
}

// Extensions lists the supported file extensions, dot included, in sorted
// order.
func Extensions() []string {
	exts := make([]string, 0, len(decoders))
	for ext := range decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func lookup(path string) (decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := decoders[ext]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", filepath.Ext(path))
	}
	return dec, nil
}

// Open decodes the whole file at path into memory.
func Open(path string) (*Track, error) {
	dec, err := lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open audio file")
	}
	defer f.Close()

	streamer, format, err := dec(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return newTrack(buffer), nil
}
