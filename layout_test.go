package brandprint

import (
	"errors"
	"math"
	"testing"
)

func TestParseLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"3.5in", 3.5, false},
		{"2in", 2, false},
		{" 4.125in ", 4.125, false},
		{"2.54cm", 1, false},
		{"25.4mm", 1, false},
		{"72pt", 1, false},
		{"96px", 1, false},
		{"", 0, true},
		{"3.5", 0, true},
		{"in", 0, true},
		{"3.5ft", 0, true},
		{"NaNin", 0, true},
		{"Infin", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLength(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLength) {
					t.Errorf("ParseLength(%q) error = %v, want ErrInvalidLength", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLength(%q) unexpected error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseLength(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreviewPixels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"3.5in", 336},
		{"2in", 192},
		{"9.5in", 912},
		{"4.125in", 396},
		{"3in", 288},
		{"2.5in", 240},
	}

	for _, tt := range tests {
		got, err := PreviewPixels(tt.input)
		if err != nil {
			t.Fatalf("PreviewPixels(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("PreviewPixels(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}

	if _, err := PreviewPixels("wide"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("PreviewPixels(wide) error = %v, want ErrInvalidLength", err)
	}
}

func TestFitZoom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w, h int
		want float64
	}{
		{"business card fits at 1", 336, 192, 1},
		{"envelope floors to 0.75", 912, 396, 0.75},
		{"sticker fits at 1", 288, 240, 1},
		{"huge clamps to min", 20000, 20000, ZoomMin},
		{"exact fit", 700, 550, 1},
		{"half fit", 1400, 1100, 0.5},
		{"zero size", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FitZoom(tt.w, tt.h); got != tt.want {
				t.Errorf("FitZoom(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestZoomInOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"in from 1", ZoomIn, 1, 1.25},
		{"in caps at max", ZoomIn, 1.4, ZoomMax},
		{"in from min", ZoomIn, ZoomMin, 0.4},
		{"out from 1", ZoomOut, 1, 0.75},
		{"out floors at min", ZoomOut, 0.25, ZoomMin},
		{"out from max", ZoomOut, ZoomMax, 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
