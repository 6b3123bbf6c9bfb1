package assets

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"
)

// Sprite is a decoded brick image reduced to the single colour a terminal
// cell can show.
type Sprite struct {
	Name   string
	Hex    string // "#rrggbb"
	Width  int
	Height int
}

// DecodeSprite reads a PNG and averages its opaque pixels in Lab space,
// weighted by alpha.
func DecodeSprite(name string, r io.Reader) (Sprite, error) {
	img, err := png.Decode(r)
	if err != nil {
		return Sprite{}, fmt.Errorf("assets: decode %s: %w", name, err)
	}

	hex, err := averageHex(img)
	if err != nil {
		return Sprite{}, fmt.Errorf("assets: %s: %w", name, err)
	}

	b := img.Bounds()
	return Sprite{
		Name:   name,
		Hex:    hex,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

func averageHex(img image.Image) (string, error) {
	var l, a, bb, weight float64

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.At(x, y)
			_, _, _, alpha := px.RGBA()
			if alpha == 0 {
				continue
			}
			c, ok := colorful.MakeColor(px)
			if !ok {
				continue
			}
			w := float64(alpha) / 0xffff
			pl, pa, pb := c.Lab()
			l += pl * w
			a += pa * w
			bb += pb * w
			weight += w
		}
	}

	if weight == 0 {
		return "", fmt.Errorf("no opaque pixels")
	}
	return colorful.Lab(l/weight, a/weight, bb/weight).Clamped().Hex(), nil
}
