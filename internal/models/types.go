package models

import "time"

// Point is a single 2D/3D facial landmark.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// LandmarkFrame is one detection cycle's worth of ordered landmark points
// (dlib 68-point layout). A nil Points slice means "no face detected".
type LandmarkFrame struct {
	Points         []Point `json:"points"`
	CapturedAtMs   int64   `json:"captured_at_ms"`
	SequenceNumber int32   `json:"sequence_number,omitempty"`
}

// MetricSample holds the geometric ratios extracted from one frame.
type MetricSample struct {
	EyeOpenness   float64
	MouthOpenness float64
	CapturedAt    time.Time
}

// AffectSignal carries confidences from the external affect estimator.
// The backend only compares them against thresholds, nothing else.
type AffectSignal struct {
	DrowsyConfidence   float64 `json:"drowsy_confidence"`
	StressedConfidence float64 `json:"stressed_confidence"`
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type AlertEvent struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	EmittedAt time.Time `json:"emitted_at"`
}

type CycleMetrics struct {
	EyeOpenness     float64 `json:"eye_openness"`
	MouthOpenness   float64 `json:"mouth_openness"`
	ClosureFraction float64 `json:"closure_fraction"`
}

// Cycle status values reported to clients.
const (
	StatusOK                  = "ok"
	StatusNoFace              = "no_face"
	StatusDegenerateGeometry  = "degenerate_geometry"
	StatusDetectorUnavailable = "detector_unavailable"
)

type CycleResult struct {
	Score          float64      `json:"score"`
	Metrics        CycleMetrics `json:"metrics"`
	Alert          *AlertEvent  `json:"alert,omitempty"`
	Status         string       `json:"status"`
	TimestampMs    int64        `json:"timestamp_ms"`
	SequenceNumber int32        `json:"sequence_number,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
	Code      string `json:"code,omitempty"`
}

type HealthStatus struct {
	Status          string        `json:"status"`
	GoBackend       string        `json:"go_backend"`
	DetectorService bool          `json:"detector_service"`
	ActiveClients   int           `json:"active_clients"`
	Uptime          time.Duration `json:"uptime"`
	Version         string        `json:"version,omitempty"`
}
