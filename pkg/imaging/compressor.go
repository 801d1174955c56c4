package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"

	// webp uploads are decodable input even though output is always JPEG.
	_ "golang.org/x/image/webp"
)

const (
	// DefaultTargetKB is the byte budget the compressor aims for.
	DefaultTargetKB = 100

	maxDimension   = 1200
	initialQuality = 60
	minQuality     = 10
	minDimension   = 200
	maxIterations  = 30

	// dimensionFactor never drops below this share of the post-resize size.
	minDimensionFactor = 0.3
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// AllowedExtensions lists the accepted upload extensions, for error responses.
func AllowedExtensions() []string {
	return []string{"gif", "jpeg", "jpg", "png", "webp"}
}

// ExtensionOf returns the lowercased extension of filename and whether
// it is an accepted upload type.
func ExtensionOf(filename string) (string, bool) {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return "", false
	}
	ext := strings.ToLower(filename[i+1:])
	return ext, allowedExtensions[ext]
}

// Compressor re-encodes images as JPEG under a byte budget, trading
// quality first and dimensions second.
type Compressor struct {
	targetKB int
}

func NewCompressor(targetKB int) *Compressor {
	if targetKB <= 0 {
		targetKB = DefaultTargetKB
	}
	return &Compressor{targetKB: targetKB}
}

// TargetBytes is the byte budget Compress aims for.
func (c *Compressor) TargetBytes() int {
	return c.targetKB * 1024
}

// Compress decodes src, flattens it onto an opaque white background and
// re-encodes it as JPEG, iterating on quality and then dimensions until
// the output fits the target size. Undershooting the target is not an
// error; the last attempt is returned. The result is never larger than
// src itself.
func (c *Compressor) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, errors.New("empty image data")
	}
	decoded, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	img := flattenOnWhite(decoded)

	targetBytes := c.TargetBytes()
	targetDim := targetDimensionFor(len(src), targetBytes)

	if img.Bounds().Dx() > targetDim || img.Bounds().Dy() > targetDim || len(src) > targetBytes {
		img = imaging.Fit(img, targetDim, targetDim, imaging.Lanczos)
	}

	// Dimension reductions are computed against this post-resize base.
	baseW, baseH := img.Bounds().Dx(), img.Bounds().Dy()
	current := img
	quality := initialQuality
	dimensionFactor := 1.0

	var out []byte
	for i := 0; i < maxIterations; i++ {
		out, err = encodeJPEG(current, quality)
		if err != nil {
			return nil, err
		}
		if len(out) <= targetBytes {
			break
		}

		if quality > minQuality {
			if q := reduceQuality(quality); q != quality {
				quality = q
				continue
			}
		}

		if dimensionFactor <= minDimensionFactor {
			break
		}
		reductionNeeded := float64(len(out)) / float64(targetBytes)
		step := math.Min(0.85, 1/math.Sqrt(reductionNeeded))
		dimensionFactor = math.Max(minDimensionFactor, dimensionFactor*step)
		newW := clampDimension(int(float64(baseW)*dimensionFactor), baseW)
		newH := clampDimension(int(float64(baseH)*dimensionFactor), baseH)
		current = imaging.Resize(img, newW, newH, imaging.Lanczos)
		quality = initialQuality
	}

	// Never grow a file: keep the input when re-encoding did not help.
	if len(out) >= len(src) {
		return src, nil
	}
	return out, nil
}

// targetDimensionFor picks the initial max dimension from the input
// byte size: heavier files get resized more aggressively up front.
func targetDimensionFor(inputSize, targetBytes int) int {
	switch {
	case inputSize > targetBytes*5:
		return 800
	case inputSize > targetBytes*3:
		return 1000
	case inputSize > targetBytes*2:
		return 1100
	default:
		return maxDimension
	}
}

// reduceQuality steps the JPEG quality down, decelerating as it drops.
func reduceQuality(quality int) int {
	switch {
	case quality > 40:
		return max(40, quality*3/4)
	case quality > 25:
		return quality - 7
	case quality > 15:
		return quality - 4
	case quality > minQuality:
		return minQuality
	default:
		return quality
	}
}

func clampDimension(v, base int) int {
	if v < minDimension {
		v = minDimension
	}
	if v > base {
		v = base
	}
	return v
}

// flattenOnWhite composites any alpha-bearing or paletted image onto an
// opaque white background so the JPEG encoder always gets plain color.
func flattenOnWhite(img image.Image) *image.NRGBA {
	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
