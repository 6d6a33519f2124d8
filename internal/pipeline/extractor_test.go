package pipeline

import (
	"errors"
	"math"
	"testing"

	"DRIVER_MONITOR/go-backend/internal/models"
)

// frameWith builds a synthetic 68-point frame whose eye and mouth contours
// produce exactly the requested ratios.
func frameWith(ear, mar float64) models.LandmarkFrame {
	points := make([]models.Point, 68)
	for i := range points {
		points[i] = models.Point{X: float64(i), Y: 200}
	}

	// Six-point eye contour: horizontal |p1-p4| = 4, verticals 2v each,
	// EAR = 4v/8 = v/2, so v = 2*ear.
	v := 2 * ear
	for _, start := range []int{leftEyeStart, rightEyeStart} {
		off := float64(start)
		points[start+0] = models.Point{X: off + 0, Y: 0}
		points[start+1] = models.Point{X: off + 1, Y: v}
		points[start+2] = models.Point{X: off + 3, Y: v}
		points[start+3] = models.Point{X: off + 4, Y: 0}
		points[start+4] = models.Point{X: off + 3, Y: -v}
		points[start+5] = models.Point{X: off + 1, Y: -v}
	}

	// Eight-point inner mouth: horizontal |p1-p5| = 6, three verticals 2w
	// each, MAR = 6w/18 = w/3, so w = 3*mar.
	w := 3 * mar
	points[innerMouthStart+0] = models.Point{X: 0, Y: 100}
	points[innerMouthStart+1] = models.Point{X: 1, Y: 100 + w}
	points[innerMouthStart+2] = models.Point{X: 3, Y: 100 + w}
	points[innerMouthStart+3] = models.Point{X: 5, Y: 100 + w}
	points[innerMouthStart+4] = models.Point{X: 6, Y: 100}
	points[innerMouthStart+5] = models.Point{X: 5, Y: 100 - w}
	points[innerMouthStart+6] = models.Point{X: 3, Y: 100 - w}
	points[innerMouthStart+7] = models.Point{X: 1, Y: 100 - w}

	return models.LandmarkFrame{Points: points}
}

func TestEyeOpenness(t *testing.T) {
	frame := frameWith(0.5, 0.3)

	got, err := EyeOpenness(frame)
	if err != nil {
		t.Fatalf("EyeOpenness failed: %v", err)
	}
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EyeOpenness = %v, want 0.5", got)
	}
}

func TestMouthOpenness(t *testing.T) {
	frame := frameWith(0.5, 0.3)

	got, err := MouthOpenness(frame)
	if err != nil {
		t.Fatalf("MouthOpenness failed: %v", err)
	}
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("MouthOpenness = %v, want 0.3", got)
	}
}

func TestExtractMetricsNonNegative(t *testing.T) {
	for _, ear := range []float64{0, 0.1, 0.35} {
		for _, mar := range []float64{0, 0.5, 2.0} {
			eye, mouth, err := ExtractMetrics(frameWith(ear, mar))
			if err != nil {
				t.Fatalf("ExtractMetrics(%v, %v) failed: %v", ear, mar, err)
			}
			if eye < 0 || mouth < 0 {
				t.Errorf("got negative metrics eye=%v mouth=%v", eye, mouth)
			}
			if math.IsNaN(eye) || math.IsInf(eye, 0) || math.IsNaN(mouth) || math.IsInf(mouth, 0) {
				t.Errorf("got non-finite metrics eye=%v mouth=%v", eye, mouth)
			}
		}
	}
}

func TestDegenerateGeometry(t *testing.T) {
	// All landmarks collapsed to one point: zero horizontal distance must
	// surface as ErrDegenerateGeometry, never NaN or Inf.
	frame := models.LandmarkFrame{Points: make([]models.Point, 68)}

	if _, _, err := ExtractMetrics(frame); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("ExtractMetrics on collapsed frame: err = %v, want ErrDegenerateGeometry", err)
	}
}

func TestTooFewLandmarks(t *testing.T) {
	frame := models.LandmarkFrame{Points: make([]models.Point, 40)}

	if _, err := EyeOpenness(frame); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("EyeOpenness on short frame: err = %v, want ErrDegenerateGeometry", err)
	}
	if _, err := MouthOpenness(frame); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("MouthOpenness on short frame: err = %v, want ErrDegenerateGeometry", err)
	}
}
