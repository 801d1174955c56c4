package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyPNG produces a PNG that compresses poorly, so the quality and
// dimension reduction paths actually run.
func noisyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompressLargeImageFitsTarget(t *testing.T) {
	src := noisyPNG(t, 1600, 1200)
	c := NewCompressor(100)
	require.Greater(t, len(src), c.TargetBytes())

	out, err := c.Compress(src)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(out), c.TargetBytes())
	assert.Less(t, len(out), len(src))

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	b := decoded.Bounds()
	assert.LessOrEqual(t, b.Dx(), 800, "a >5x-target input starts at the 800px tier")
	assert.GreaterOrEqual(t, b.Dx(), 200)
	assert.GreaterOrEqual(t, b.Dy(), 200)
}

func TestCompressNeverGrowsFile(t *testing.T) {
	// A tiny, already-efficient image: re-encoding at quality 60 may not
	// help, and the original bytes must win in that case.
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 20}))
	src := buf.Bytes()

	out, err := NewCompressor(100).Compress(src)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), len(src))
}

func TestCompressFlattensAlphaOntoWhite(t *testing.T) {
	// Fully transparent pixels must come out white, not black.
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := NewCompressor(100).Compress(buf.Bytes())
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	r, g, b, _ := decoded.At(10, 10).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Greater(t, g, uint32(0xf000))
	assert.Greater(t, b, uint32(0xf000))
}

func TestCompressRejectsCorruptInput(t *testing.T) {
	c := NewCompressor(100)

	_, err := c.Compress(nil)
	assert.Error(t, err)

	_, err = c.Compress([]byte("not an image at all"))
	assert.Error(t, err)
}

func TestTargetDimensionTiers(t *testing.T) {
	target := 100 * 1024
	tests := []struct {
		name  string
		size  int
		want  int
	}{
		{"over 5x", 6 * target, 800},
		{"over 3x", 4 * target, 1000},
		{"over 2x", 3 * target, 1100},
		{"small", target, 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, targetDimensionFor(tt.size, target))
		})
	}
}

func TestReduceQualitySchedule(t *testing.T) {
	tests := []struct {
		quality int
		want    int
	}{
		{60, 45},
		{45, 40},
		{40, 33},
		{26, 19},
		{25, 21},
		{16, 12},
		{15, 10},
		{11, 10},
		{10, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reduceQuality(tt.quality), "quality %d", tt.quality)
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		filename string
		wantExt  string
		wantOk   bool
	}{
		{"photo.jpg", "jpg", true},
		{"photo.JPEG", "jpeg", true},
		{"photo.png", "png", true},
		{"animated.gif", "gif", true},
		{"modern.webp", "webp", true},
		{"document.pdf", "pdf", false},
		{"noextension", "", false},
		{"archive.tar.gz", "gz", false},
	}
	for _, tt := range tests {
		ext, ok := ExtensionOf(tt.filename)
		assert.Equal(t, tt.wantOk, ok, tt.filename)
		assert.Equal(t, tt.wantExt, ext, tt.filename)
	}
}
