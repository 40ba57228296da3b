// Package icon downloads remote images and converts them into raw icon
// pixel buffers for the runner window.
package icon

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"log"
	"net/http"
	"time"

	_ "github.com/sergeymakinen/go-ico" // register ICO decoder
	_ "golang.org/x/image/bmp"          // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/NRJ900/Quest-Passer/internal/buildinfo"
)

const (
	// MaxBytes bounds the downloaded body.
	MaxBytes = 8 << 20
	// MaxSize is the largest icon edge kept; bigger images are downscaled.
	MaxSize = 256

	defaultTimeout = 15 * time.Second
)

// Asset is a decoded icon: Width*Height pixels, 4 bytes each, in BGRA order.
type Asset struct {
	Pix    []byte
	Width  int
	Height int
}

// Loader fetches icons over HTTP. The zero value is not usable; use NewLoader.
type Loader struct {
	Client    *http.Client
	UserAgent string
	trace     *log.Logger
}

// NewLoader creates a loader that reports each step to trace.
func NewLoader(trace *log.Logger) *Loader {
	if trace == nil {
		trace = log.New(io.Discard, "", 0)
	}
	return &Loader{
		Client:    &http.Client{Timeout: defaultTimeout},
		UserAgent: buildinfo.UserAgent(),
		trace:     trace,
	}
}

// Load downloads and decodes the image at url. Any failure is logged and
// yields nil: a missing icon is a degraded state, never a fatal one.
func (l *Loader) Load(ctx context.Context, url string) *Asset {
	l.trace.Printf("Attempting to load icon: %s", url)

	data, err := l.download(ctx, url)
	if err != nil {
		l.trace.Printf("Download failed: %v", err)
		return nil
	}
	l.trace.Printf("Downloaded %d bytes", len(data))

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		l.trace.Printf("Decode failed: %v", err)
		return nil
	}

	asset := FromImage(img)
	if asset == nil {
		l.trace.Println("Decode failed: empty image")
		return nil
	}
	l.trace.Printf("Decoded %s image: %dx%d", format, asset.Width, asset.Height)
	return asset
}

func (l *Loader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", l.UserAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch icon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) > MaxBytes {
		return nil, fmt.Errorf("icon larger than %d bytes", MaxBytes)
	}
	return data, nil
}

// FromImage converts img into a BGRA asset, downscaling it to fit MaxSize.
// It returns nil for an empty image.
func FromImage(img image.Image) *Asset {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}

	w, h := fit(b.Dx(), b.Dy(), MaxSize)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}

	SwapRB(dst.Pix)
	return &Asset{Pix: dst.Pix, Width: w, Height: h}
}

// fit scales w x h down to fit within max on both sides, keeping the aspect
// ratio. Images that already fit are not upscaled.
func fit(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		nh := h * max / w
		if nh < 1 {
			nh = 1
		}
		return max, nh
	}
	nw := w * max / h
	if nw < 1 {
		nw = 1
	}
	return nw, max
}

// SwapRB swaps the first and third byte of every 4-byte pixel in place,
// converting RGBA to BGRA and back. A trailing partial pixel is left alone.
func SwapRB(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}
