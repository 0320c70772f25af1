// Package avatar turns an uploaded picture into the square data URL stored
// on a profile.
package avatar

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/dmitrijs2005/questkeeper/internal/common"
)

const (
	Size          = 256
	Quality       = 92
	MaxInputBytes = 10 << 20
	MaxPixels     = 40_000_000
	dataURLPrefix = "data:image/jpeg;base64,"
)

// Process decodes raw (PNG, JPEG, GIF, WebP or BMP), center-crops it to a
// square, scales it to Size and returns it as a JPEG data URL. Transparent
// pixels come out white.
func Process(raw []byte) (string, error) {
	if len(raw) == 0 || len(raw) > MaxInputBytes {
		return "", common.Validation("Could not process image.")
	}

	// Dimensions are read from the header so oversized images are refused
	// before any pixel buffer is allocated.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return "", common.Validation("Could not process image.")
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return "", common.Validation("Could not process image.")
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", common.Validation("Could not process image.")
	}

	b := src.Bounds()
	side := min(b.Dx(), b.Dy())
	if side <= 0 {
		return "", common.Validation("Could not process image.")
	}
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: Quality}); err != nil {
		return "", common.Validation("Could not process image.")
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode parses a data URL produced by Process back into an image.
func Decode(dataURL string) (image.Image, error) {
	if len(dataURL) <= len(dataURLPrefix) || dataURL[:len(dataURLPrefix)] != dataURLPrefix {
		return nil, common.Validation("Not an avatar data URL.")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[len(dataURLPrefix):])
	if err != nil {
		return nil, common.Validation("Not an avatar data URL.")
	}
	return jpeg.Decode(bytes.NewReader(raw))
}
