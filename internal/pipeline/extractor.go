package pipeline

import (
	"errors"
	"fmt"
	"math"

	"DRIVER_MONITOR/go-backend/internal/models"
)

// ErrDegenerateGeometry means the landmarks cannot produce a meaningful
// ratio (zero horizontal distance or missing indices). The cycle that hit
// it is abandoned; buffer and cooldown state are left untouched.
var ErrDegenerateGeometry = errors.New("degenerate landmark geometry")

// dlib 68-point layout: contours used by the extractor.
const (
	leftEyeStart    = 36
	rightEyeStart   = 42
	innerMouthStart = 60
	minLandmarks    = 68
)

func distance(a, b models.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// eyeAspectRatio computes (|p2-p6| + |p3-p5|) / (2*|p1-p4|) over the six
// eye contour points starting at idx. Lower values mean a more closed eye.
func eyeAspectRatio(points []models.Point, idx int) (float64, error) {
	p := points[idx : idx+6]
	horizontal := distance(p[0], p[3])
	if horizontal == 0 {
		return 0, fmt.Errorf("eye contour at %d: %w", idx, ErrDegenerateGeometry)
	}
	vertical := distance(p[1], p[5]) + distance(p[2], p[4])
	return vertical / (2 * horizontal), nil
}

// EyeOpenness returns the EAR averaged across both eyes.
func EyeOpenness(frame models.LandmarkFrame) (float64, error) {
	if len(frame.Points) < minLandmarks {
		return 0, fmt.Errorf("frame has %d landmarks, want %d: %w", len(frame.Points), minLandmarks, ErrDegenerateGeometry)
	}
	left, err := eyeAspectRatio(frame.Points, leftEyeStart)
	if err != nil {
		return 0, err
	}
	right, err := eyeAspectRatio(frame.Points, rightEyeStart)
	if err != nil {
		return 0, err
	}
	return (left + right) / 2, nil
}

// MouthOpenness returns the MAR over the eight inner-mouth contour points:
// three vertical distances against one horizontal. Higher means wider open.
func MouthOpenness(frame models.LandmarkFrame) (float64, error) {
	if len(frame.Points) < minLandmarks {
		return 0, fmt.Errorf("frame has %d landmarks, want %d: %w", len(frame.Points), minLandmarks, ErrDegenerateGeometry)
	}
	p := frame.Points[innerMouthStart : innerMouthStart+8]
	horizontal := distance(p[0], p[4])
	if horizontal == 0 {
		return 0, fmt.Errorf("mouth contour: %w", ErrDegenerateGeometry)
	}
	vertical := distance(p[1], p[7]) + distance(p[2], p[6]) + distance(p[3], p[5])
	return vertical / (3 * horizontal), nil
}

// ExtractMetrics maps one frame to its metric sample. Pure function, no state.
func ExtractMetrics(frame models.LandmarkFrame) (eye, mouth float64, err error) {
	eye, err = EyeOpenness(frame)
	if err != nil {
		return 0, 0, err
	}
	mouth, err = MouthOpenness(frame)
	if err != nil {
		return 0, 0, err
	}
	return eye, mouth, nil
}
