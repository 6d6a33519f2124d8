package pipeline

import (
	"testing"
	"time"

	"DRIVER_MONITOR/go-backend/internal/models"
)

func sampleAt(t time.Time, eye float64) models.MetricSample {
	return models.MetricSample{EyeOpenness: eye, MouthOpenness: 0.2, CapturedAt: t}
}

func TestBufferEvictsBeyondRetention(t *testing.T) {
	buf := NewHistoryBuffer(5 * time.Second)
	start := time.Now()

	for i := 0; i < 8; i++ {
		buf.Append(sampleAt(start.Add(time.Duration(i)*time.Second), 0.3))
	}

	// Samples at t+0 and t+1 are older than 5s relative to the last append
	// (t+7); t+2 is exactly 5s old and stays.
	if got := buf.Len(); got != 6 {
		t.Errorf("Len = %d, want 6", got)
	}
	if got := buf.samples[0].CapturedAt; !got.Equal(start.Add(2 * time.Second)) {
		t.Errorf("oldest retained sample at %v, want exactly horizon-old t+2", got)
	}
}

func TestBufferRetentionSpan(t *testing.T) {
	buf := NewHistoryBuffer(5 * time.Second)
	start := time.Now()

	for i := 0; i < 100; i++ {
		buf.Append(sampleAt(start.Add(time.Duration(i)*300*time.Millisecond), 0.3))
	}

	first := buf.samples[0].CapturedAt
	last := buf.samples[len(buf.samples)-1].CapturedAt
	if span := last.Sub(first); span > 5*time.Second {
		t.Errorf("buffer span %v exceeds retention horizon", span)
	}
}

func TestBufferOutOfOrderAppendStaysWithinHorizon(t *testing.T) {
	buf := NewHistoryBuffer(5 * time.Second)
	start := time.Now()

	// Replayed payload: second sample claims to be 10s older than the first.
	// Its timestamp is clamped to the tail, so the span never exceeds the
	// horizon and eviction keeps working against the newest append.
	buf.Append(sampleAt(start, 0.3))
	buf.Append(sampleAt(start.Add(-10*time.Second), 0.3))

	if got := buf.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	first := buf.samples[0].CapturedAt
	last := buf.samples[len(buf.samples)-1].CapturedAt
	if span := last.Sub(first); span < 0 || span > 5*time.Second {
		t.Errorf("buffer span %v after out-of-order append, want within [0, 5s]", span)
	}
	if last.Before(first) {
		t.Errorf("tail timestamp %v regressed below head %v", last, first)
	}
}

func TestClosureFractionInsufficientData(t *testing.T) {
	buf := NewHistoryBuffer(5 * time.Second)
	start := time.Now()

	// Nine fully closed samples still read as zero: cold-start policy.
	for i := 0; i < 9; i++ {
		buf.Append(sampleAt(start.Add(time.Duration(i)*100*time.Millisecond), 0.0))
	}

	if got := buf.ClosureFraction(0.2); got != 0 {
		t.Errorf("ClosureFraction with 9 samples = %v, want 0", got)
	}
}

func TestClosureFraction(t *testing.T) {
	buf := NewHistoryBuffer(5 * time.Second)
	start := time.Now()

	for i := 0; i < 10; i++ {
		eye := 0.3
		if i%2 == 0 {
			eye = 0.1
		}
		buf.Append(sampleAt(start.Add(time.Duration(i)*100*time.Millisecond), eye))
	}

	if got := buf.ClosureFraction(0.2); got != 0.5 {
		t.Errorf("ClosureFraction = %v, want 0.5", got)
	}
}

func TestClosureFractionWindowCap(t *testing.T) {
	buf := NewHistoryBuffer(10 * time.Second)
	start := time.Now()

	// Ten closed samples followed by thirty open ones: only the most recent
	// thirty count, so the closed burst falls out of the sub-window.
	for i := 0; i < 10; i++ {
		buf.Append(sampleAt(start.Add(time.Duration(i)*100*time.Millisecond), 0.05))
	}
	for i := 10; i < 40; i++ {
		buf.Append(sampleAt(start.Add(time.Duration(i)*100*time.Millisecond), 0.35))
	}

	if got := buf.ClosureFraction(0.2); got != 0 {
		t.Errorf("ClosureFraction = %v, want 0 (closed samples outside 30-sample window)", got)
	}
}

func TestBufferReset(t *testing.T) {
	buf := NewHistoryBuffer(5 * time.Second)
	start := time.Now()

	for i := 0; i < 20; i++ {
		buf.Append(sampleAt(start.Add(time.Duration(i)*100*time.Millisecond), 0.05))
	}
	buf.Reset()

	if got := buf.Len(); got != 0 {
		t.Errorf("Len after Reset = %d, want 0", got)
	}
	if got := buf.ClosureFraction(0.2); got != 0 {
		t.Errorf("ClosureFraction after Reset = %v, want 0", got)
	}
}
