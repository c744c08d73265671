package game

import (
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const minFontSize = 6

// fontCache keeps one face per pixel size; labels scale with the bubbles.
type fontCache struct {
	font  *opentype.Font
	faces map[int]font.Face
}

func newFontCache() (*fontCache, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse label font")
	}
	return &fontCache{font: f, faces: map[int]font.Face{}}, nil
}

func (c *fontCache) face(size int) font.Face {
	if size < minFontSize {
		size = minFontSize
	}
	if face, ok := c.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		face = basicfont.Face7x13
	}
	c.faces[size] = face
	return face
}
