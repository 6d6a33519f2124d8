package pipeline

import (
	"testing"
	"time"

	"DRIVER_MONITOR/go-backend/internal/models"
)

func TestProcessNoFace(t *testing.T) {
	p := New(DefaultConfig())
	now := time.Now()

	// Three consecutive no-face cycles: score 0 each, buffer untouched.
	for i := 0; i < 3; i++ {
		result := p.Process(models.LandmarkFrame{}, models.AffectSignal{}, now.Add(time.Duration(i)*time.Second))
		if result.Status != models.StatusNoFace {
			t.Errorf("cycle %d: status = %s, want %s", i, result.Status, models.StatusNoFace)
		}
		if result.Score != 0 {
			t.Errorf("cycle %d: score = %v, want 0", i, result.Score)
		}
		if result.Alert != nil {
			t.Errorf("cycle %d: unexpected alert %+v", i, result.Alert)
		}
	}
	if got := p.SampleCount(); got != 0 {
		t.Errorf("SampleCount = %d, want 0", got)
	}
}

func TestProcessDegenerateKeepsLastScore(t *testing.T) {
	p := New(DefaultConfig())
	now := time.Now()

	// A drowsy frame establishes a non-zero score.
	result := p.Process(frameWith(0.05, 0.2), models.AffectSignal{}, now)
	if result.Status != models.StatusOK || result.Score == 0 {
		t.Fatalf("setup cycle: status=%s score=%v", result.Status, result.Score)
	}
	prevScore := result.Score
	prevCount := p.SampleCount()

	// Collapsed landmarks: cycle abandoned, previous score retained,
	// nothing appended.
	degenerate := models.LandmarkFrame{Points: make([]models.Point, 68)}
	result = p.Process(degenerate, models.AffectSignal{}, now.Add(time.Second))
	if result.Status != models.StatusDegenerateGeometry {
		t.Errorf("status = %s, want %s", result.Status, models.StatusDegenerateGeometry)
	}
	if result.Score != prevScore {
		t.Errorf("score = %v, want previous score %v", result.Score, prevScore)
	}
	if result.Alert != nil {
		t.Errorf("unexpected alert on degenerate cycle: %+v", result.Alert)
	}
	if got := p.SampleCount(); got != prevCount {
		t.Errorf("SampleCount = %d, want %d (no append on failure)", got, prevCount)
	}

	// The next valid frame resumes normally.
	result = p.Process(frameWith(0.3, 0.2), models.AffectSignal{}, now.Add(2*time.Second))
	if result.Status != models.StatusOK {
		t.Errorf("recovery cycle: status = %s, want %s", result.Status, models.StatusOK)
	}
	if got := p.SampleCount(); got != prevCount+1 {
		t.Errorf("SampleCount after recovery = %d, want %d", got, prevCount+1)
	}
}

func TestProcessOKCycle(t *testing.T) {
	p := New(DefaultConfig())

	result := p.Process(frameWith(0.3, 0.4), models.AffectSignal{}, time.Now())
	if result.Status != models.StatusOK {
		t.Fatalf("status = %s, want %s", result.Status, models.StatusOK)
	}
	if result.Metrics.EyeOpenness <= 0 || result.Metrics.MouthOpenness <= 0 {
		t.Errorf("metrics not populated: %+v", result.Metrics)
	}
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("score = %v, out of [0,100]", result.Score)
	}
}

func TestProcessDrowsyScenario(t *testing.T) {
	p := New(DefaultConfig())
	start := time.Now()

	// A minute of nearly closed eyes at 10 fps. Exactly one alert may come
	// out per cooldown window.
	var alerts []*models.AlertEvent
	frame := frameWith(0.05, 0.2)
	for i := 0; i < 600; i++ {
		now := start.Add(time.Duration(i) * 100 * time.Millisecond)
		frame.CapturedAtMs = now.UnixMilli()
		result := p.Process(frame, models.AffectSignal{}, now)
		if result.Alert != nil {
			alerts = append(alerts, result.Alert)
		}
	}

	if len(alerts) == 0 {
		t.Fatal("sustained closed eyes never produced an alert")
	}
	for i := 1; i < len(alerts); i++ {
		gap := alerts[i].EmittedAt.Sub(alerts[i-1].EmittedAt)
		if gap < 3*time.Second {
			t.Errorf("alerts %d and %d only %v apart", i-1, i, gap)
		}
	}
	t.Logf("%d alerts over 60s, first severity %s", len(alerts), alerts[0].Severity)
}

func TestPipelineReset(t *testing.T) {
	p := New(DefaultConfig())
	start := time.Now()

	frame := frameWith(0.05, 0.2)
	for i := 0; i < 20; i++ {
		now := start.Add(time.Duration(i) * 100 * time.Millisecond)
		frame.CapturedAtMs = now.UnixMilli()
		p.Process(frame, models.AffectSignal{}, now)
	}
	p.Reset()

	if got := p.SampleCount(); got != 0 {
		t.Errorf("SampleCount after Reset = %d, want 0", got)
	}
	if got := p.LastScore(); got != 0 {
		t.Errorf("LastScore after Reset = %v, want 0", got)
	}

	// Cold start again: the first cycle after a reset has no closure signal.
	now := start.Add(time.Hour)
	frame.CapturedAtMs = now.UnixMilli()
	result := p.Process(frame, models.AffectSignal{}, now)
	if result.Metrics.ClosureFraction != 0 {
		t.Errorf("ClosureFraction after Reset = %v, want 0", result.Metrics.ClosureFraction)
	}
}

func TestPipelineInstancesIndependent(t *testing.T) {
	a := New(DefaultConfig())
	b := New(DefaultConfig())
	start := time.Now()

	// Drive pipeline A into an alert; pipeline B must stay Idle and cold.
	frame := frameWith(0.05, 0.2)
	for i := 0; i < 30; i++ {
		now := start.Add(time.Duration(i) * 100 * time.Millisecond)
		frame.CapturedAtMs = now.UnixMilli()
		a.Process(frame, models.AffectSignal{}, now)
	}

	if got := b.SampleCount(); got != 0 {
		t.Errorf("pipeline B SampleCount = %d, want 0", got)
	}
	result := b.Process(frameWith(0.05, 0.2), models.AffectSignal{}, start.Add(time.Minute))
	if result.Metrics.ClosureFraction != 0 {
		t.Errorf("pipeline B ClosureFraction = %v, want 0 (own buffer)", result.Metrics.ClosureFraction)
	}
}
