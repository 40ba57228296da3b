package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	ico "github.com/sergeymakinen/go-ico"
)

const traySize = 32

var (
	trayBackground = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x2E, A: 0xFF}
	trayForeground = color.NRGBA{R: 0xCD, G: 0xD6, B: 0xF4, A: 0xFF}
)

// TrayImage draws the default tray glyph: a light square inset on the
// window background color.
func TrayImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, traySize, traySize))
	draw.Draw(img, img.Bounds(), image.NewUniform(trayBackground), image.Point{}, draw.Src)
	inset := traySize / 4
	inner := image.Rect(inset, inset, traySize-inset, traySize-inset)
	draw.Draw(img, inner, image.NewUniform(trayForeground), image.Point{}, draw.Src)
	return img
}

// TrayICO returns the default tray glyph encoded as an ICO file.
func TrayICO() ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, TrayImage()); err != nil {
		return nil, fmt.Errorf("failed to encode tray icon: %w", err)
	}
	return buf.Bytes(), nil
}
