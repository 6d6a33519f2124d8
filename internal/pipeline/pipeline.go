package pipeline

import (
	"time"

	"DRIVER_MONITOR/go-backend/internal/models"
)

// Config bundles everything one pipeline instance needs. Zero values fall
// back to the defaults, so an empty Config is usable.
type Config struct {
	Scorer ScorerConfig `yaml:"scorer"`
	Alerts AlertConfig  `yaml:"alerts"`

	// RetentionMs bounds the history buffer's time horizon.
	RetentionMs int `yaml:"retention_ms"`

	// ClosureThreshold is the EAR below which a sample counts as "closed"
	// for the closure fraction (PERCLOS).
	ClosureThreshold float64 `yaml:"closure_threshold"`
}

func DefaultConfig() Config {
	return Config{
		Scorer:           DefaultScorerConfig(),
		Alerts:           DefaultAlertConfig(),
		RetentionMs:      int(DefaultRetention / time.Millisecond),
		ClosureThreshold: 0.2,
	}
}

// Pipeline is one independent evaluation instance: its own history buffer,
// its own cooldown state. Instances never share mutable state; a host with
// several cameras runs one Pipeline per camera. Not safe for concurrent use.
type Pipeline struct {
	buffer    *HistoryBuffer
	scorer    *Scorer
	evaluator *AlertEvaluator

	closureThreshold float64
	lastScore        float64
}

func New(cfg Config) *Pipeline {
	if cfg.Scorer == (ScorerConfig{}) {
		cfg.Scorer = DefaultScorerConfig()
	}
	if cfg.Alerts == (AlertConfig{}) {
		cfg.Alerts = DefaultAlertConfig()
	}
	if cfg.ClosureThreshold == 0 {
		cfg.ClosureThreshold = 0.2
	}
	return &Pipeline{
		buffer:           NewHistoryBuffer(time.Duration(cfg.RetentionMs) * time.Millisecond),
		scorer:           NewScorer(cfg.Scorer),
		evaluator:        NewAlertEvaluator(cfg.Alerts),
		closureThreshold: cfg.ClosureThreshold,
	}
}

// Process runs one evaluation cycle. A frame with no points means "no face
// detected": score 0, buffer untouched, no alert. Degenerate geometry keeps
// the previous score and skips both the buffer append and alert evaluation.
// No outcome ever corrupts the buffer or the cooldown state.
func (p *Pipeline) Process(frame models.LandmarkFrame, affect models.AffectSignal, now time.Time) models.CycleResult {
	result := models.CycleResult{
		TimestampMs:    now.UnixMilli(),
		SequenceNumber: frame.SequenceNumber,
	}

	if len(frame.Points) == 0 {
		result.Status = models.StatusNoFace
		return result
	}

	eye, mouth, err := ExtractMetrics(frame)
	if err != nil {
		result.Status = models.StatusDegenerateGeometry
		result.Score = p.lastScore
		return result
	}

	capturedAt := now
	if frame.CapturedAtMs > 0 {
		capturedAt = time.UnixMilli(frame.CapturedAtMs)
	}
	p.buffer.Append(models.MetricSample{
		EyeOpenness:   eye,
		MouthOpenness: mouth,
		CapturedAt:    capturedAt,
	})

	closure := p.buffer.ClosureFraction(p.closureThreshold)
	score := p.scorer.Score(eye, mouth, closure, affect)
	p.lastScore = score

	result.Status = models.StatusOK
	result.Score = score
	result.Metrics = models.CycleMetrics{
		EyeOpenness:     eye,
		MouthOpenness:   mouth,
		ClosureFraction: closure,
	}
	result.Alert = p.evaluator.Evaluate(score, eye, mouth, closure, now)
	return result
}

// LastScore returns the score of the most recent successful cycle.
func (p *Pipeline) LastScore() float64 {
	return p.lastScore
}

// SampleCount returns how many samples the history buffer currently holds.
func (p *Pipeline) SampleCount() int {
	return p.buffer.Len()
}

// Reset discards the history buffer and returns the cooldown state to Idle.
// Used when detection stops; a restarted pipeline begins cold.
func (p *Pipeline) Reset() {
	p.buffer.Reset()
	p.evaluator.Reset()
	p.lastScore = 0
}
