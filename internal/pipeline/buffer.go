package pipeline

import (
	"time"

	"DRIVER_MONITOR/go-backend/internal/models"
)

const (
	// DefaultRetention bounds how far back samples are kept.
	DefaultRetention = 5 * time.Second

	// minSamplesForClosure is the cold-start guard: with fewer samples the
	// closure fraction is too noisy to act on, so it reads as zero.
	minSamplesForClosure = 10

	// closureWindow caps how many recent samples feed the closure fraction,
	// so burst frame rates don't dilute the same wall-clock window.
	closureWindow = 30
)

// HistoryBuffer is a time-bounded, insertion-ordered sequence of metric
// samples. Eviction happens on every append, never in the background.
// Not safe for concurrent use; each pipeline instance owns its own.
type HistoryBuffer struct {
	samples   []models.MetricSample
	retention time.Duration
}

func NewHistoryBuffer(retention time.Duration) *HistoryBuffer {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &HistoryBuffer{retention: retention}
}

// Append inserts the sample at the tail, then drops everything older than
// the retention horizon measured against the just-appended timestamp.
// Timestamps are forced monotonic: a sample claiming to be older than the
// current tail is clamped to the tail, so a replayed or out-of-order payload
// can never widen the span past the horizon.
func (b *HistoryBuffer) Append(sample models.MetricSample) {
	if n := len(b.samples); n > 0 && sample.CapturedAt.Before(b.samples[n-1].CapturedAt) {
		sample.CapturedAt = b.samples[n-1].CapturedAt
	}
	b.samples = append(b.samples, sample)

	cutoff := sample.CapturedAt.Add(-b.retention)
	firstKept := 0
	// Strict Before: a sample exactly horizon-old is still inside the window.
	for firstKept < len(b.samples) && b.samples[firstKept].CapturedAt.Before(cutoff) {
		firstKept++
	}
	if firstKept > 0 {
		b.samples = append(b.samples[:0], b.samples[firstKept:]...)
	}
}

// ClosureFraction returns the share of recent samples whose eye openness is
// below threshold. Returns 0 with fewer than 10 samples; otherwise only the
// most recent 30 samples are considered.
func (b *HistoryBuffer) ClosureFraction(threshold float64) float64 {
	if len(b.samples) < minSamplesForClosure {
		return 0
	}

	window := b.samples
	if len(window) > closureWindow {
		window = window[len(window)-closureWindow:]
	}

	closed := 0
	for _, s := range window {
		if s.EyeOpenness < threshold {
			closed++
		}
	}
	return float64(closed) / float64(len(window))
}

func (b *HistoryBuffer) Len() int {
	return len(b.samples)
}

// Reset discards all samples; a restarted pipeline begins cold.
func (b *HistoryBuffer) Reset() {
	b.samples = b.samples[:0]
}
