package brandprint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PixelsPerInch is the CSS reference resolution.
const PixelsPerInch = 96

// Length units accepted by ParseLength, expressed in inches per unit.
var lengthUnits = []struct {
	suffix string
	inches float64
}{
	{"in", 1},
	{"cm", 1 / 2.54},
	{"mm", 1 / 25.4},
	{"pt", 1.0 / 72},
	{"px", 1.0 / PixelsPerInch},
}

// ParseLength converts a CSS length such as "3.5in" or "89mm" to inches.
func ParseLength(s string) (float64, error) {
	v := strings.TrimSpace(s)
	for _, u := range lengthUnits {
		num, ok := strings.CutSuffix(v, u.suffix)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
		}
		return f * u.inches, nil
	}
	return 0, fmt.Errorf("%w: %q (units: in, cm, mm, pt, px)", ErrInvalidLength, s)
}

// PreviewPixels converts a CSS length to whole pixels at 96 per inch.
func PreviewPixels(length string) (int, error) {
	in, err := ParseLength(length)
	if err != nil {
		return 0, err
	}
	return int(math.Round(in * PixelsPerInch)), nil
}

// Preview zoom bounds.
const (
	ZoomMin  = 0.15
	ZoomMax  = 1.5
	ZoomStep = 0.25

	// previewAreaWidth and previewAreaHeight bound the on-screen preview.
	previewAreaWidth  = 700
	previewAreaHeight = 550
)

// FitZoom returns the largest zoom step at which a preview of the given
// pixel size fits the preview area without upscaling.
func FitZoom(previewWidth, previewHeight int) float64 {
	if previewWidth <= 0 || previewHeight <= 0 {
		return 1
	}
	fit := math.Min(math.Min(
		previewAreaWidth/float64(previewWidth),
		previewAreaHeight/float64(previewHeight)), 1)
	return math.Max(math.Floor(fit/ZoomStep)*ZoomStep, ZoomMin)
}

// ZoomIn raises zoom by one step, capped at ZoomMax.
func ZoomIn(zoom float64) float64 {
	return math.Min(roundHundredths(zoom+ZoomStep), ZoomMax)
}

// ZoomOut lowers zoom by one step, floored at ZoomMin.
func ZoomOut(zoom float64) float64 {
	return math.Max(roundHundredths(zoom-ZoomStep), ZoomMin)
}

func roundHundredths(v float64) float64 {
	return math.Round(v*100) / 100
}
