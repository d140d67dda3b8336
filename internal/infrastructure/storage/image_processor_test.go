package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func noisyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	rnd := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageProcessor_ValidateImage(t *testing.T) {
	p := NewImageProcessor(1536*1024, 1024*1024, 1920)

	info, err := p.ValidateImage(encodePNG(t, 64, 32))
	require.NoError(t, err)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, 64, info.Width)
	assert.Equal(t, 32, info.Height)

	var gifBuf bytes.Buffer
	require.NoError(t, gif.Encode(&gifBuf, image.NewPaletted(image.Rect(0, 0, 4, 4), []color.Color{color.Black, color.White}), nil))
	info, err = p.ValidateImage(gifBuf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "image/gif", info.ContentType)
}

func TestImageProcessor_ValidateImage_Errors(t *testing.T) {
	p := NewImageProcessor(100, 50, 1920)

	_, err := p.ValidateImage(make([]byte, 101))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = p.ValidateImage([]byte("hello world"))
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestImageProcessor_NeedsCompression(t *testing.T) {
	p := NewImageProcessor(0, 1000, 100)

	assert.True(t, p.NeedsCompression(make([]byte, 1001), &ImageInfo{Format: "png", Width: 10, Height: 10}))
	assert.True(t, p.NeedsCompression(make([]byte, 10), &ImageInfo{Format: "jpeg", Width: 200, Height: 10}))
	assert.False(t, p.NeedsCompression(make([]byte, 10), &ImageInfo{Format: "jpeg", Width: 100, Height: 100}))
	assert.False(t, p.NeedsCompression(make([]byte, 5000), &ImageInfo{Format: "gif", Width: 500, Height: 500}))
	assert.False(t, p.NeedsCompression(nil, nil))
}

func TestImageProcessor_Compress(t *testing.T) {
	p := NewImageProcessor(0, 200*1024, 100)
	src := noisyPNG(t, 300, 150)

	out, err := p.Compress(src)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
	assert.LessOrEqual(t, len(out), 200*1024)
}

func TestImageProcessor_Compress_KeepsSmallDimensions(t *testing.T) {
	p := NewImageProcessor(0, 0, 1920)

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 30, 60)), nil))

	out, err := p.Compress(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, OrientationPortrait, DetectOrientation(out))
}

func TestImageProcessor_Compress_InvalidInput(t *testing.T) {
	p := NewImageProcessor(0, 0, 1920)

	_, err := p.Compress([]byte("nope"))
	assert.ErrorIs(t, err, ErrImageDecode)
}
