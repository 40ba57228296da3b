package icon

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testLoader(ts *httptest.Server) *Loader {
	l := NewLoader(log.New(io.Discard, "", 0))
	l.Client = ts.Client()
	return l
}

func TestLoadPNG(t *testing.T) {
	body := encodePNG(t, solidImage(2, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))

	var userAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	asset := testLoader(ts).Load(context.Background(), ts.URL+"/icon.png")
	require.NotNil(t, asset)
	require.Equal(t, 2, asset.Width)
	require.Equal(t, 3, asset.Height)
	require.Len(t, asset.Pix, 2*3*4)
	// BGRA
	require.Equal(t, []byte{30, 20, 10, 255}, asset.Pix[:4])
	require.Contains(t, userAgent, "QuestPasser/")
}

func TestLoadICO(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ico.Encode(&buf, solidImage(16, 16, color.NRGBA{R: 200, A: 255})))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer ts.Close()

	asset := testLoader(ts).Load(context.Background(), ts.URL)
	require.NotNil(t, asset)
	require.Equal(t, 16, asset.Width)
	require.Equal(t, []byte{0, 0, 200, 255}, asset.Pix[:4])
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not an image",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>nope</html>"))
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {},
		},
		{
			name: "too large",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(make([]byte, MaxBytes+1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()
			require.Nil(t, testLoader(ts).Load(context.Background(), ts.URL))
		})
	}
}

func TestLoadUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	l := NewLoader(nil)
	require.Nil(t, l.Load(context.Background(), url))
	require.Nil(t, l.Load(context.Background(), "::not a url"))
}

func TestFromImageDownscales(t *testing.T) {
	asset := FromImage(solidImage(512, 256, color.NRGBA{G: 255, A: 255}))
	require.NotNil(t, asset)
	require.Equal(t, 256, asset.Width)
	require.Equal(t, 128, asset.Height)
	require.Len(t, asset.Pix, 256*128*4)

	require.Nil(t, FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0))))
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{64, 64, 64, 64},
		{256, 256, 256, 256},
		{1024, 1024, 256, 256},
		{1000, 10, 256, 2},
		{10, 5000, 1, 256},
	}
	for _, tt := range tests {
		w, h := fit(tt.w, tt.h, MaxSize)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fit(%d, %d) = %d, %d; want %d, %d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestSwapRBSelfInverse(t *testing.T) {
	orig := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	buf := append([]byte(nil), orig...)

	SwapRB(buf)
	require.Equal(t, []byte{3, 2, 1, 4, 7, 6, 5, 8, 9, 10}, buf)

	SwapRB(buf)
	require.Equal(t, orig, buf)
}

func TestTrayICO(t *testing.T) {
	data, err := TrayICO()
	require.NoError(t, err)

	img, err := ico.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
}
