package pipeline

import "DRIVER_MONITOR/go-backend/internal/models"

// ScorerConfig holds the weights and gates of the composite score.
// Eye closure is the strongest physiological signal, yawning second,
// the sustained-closure trend third; affect is a weak external corroborator.
type ScorerConfig struct {
	EyeWeight     float64 `yaml:"eye_weight"`
	MouthWeight   float64 `yaml:"mouth_weight"`
	ClosureWeight float64 `yaml:"closure_weight"`
	AffectWeight  float64 `yaml:"affect_weight"`

	// EyeOpenThreshold is the EAR below which the eye sub-score starts rising.
	EyeOpenThreshold float64 `yaml:"eye_open_threshold"`

	DrowsyConfidenceGate   float64 `yaml:"drowsy_confidence_gate"`
	StressedConfidenceGate float64 `yaml:"stressed_confidence_gate"`
}

func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		EyeWeight:              0.4,
		MouthWeight:            0.3,
		ClosureWeight:          0.2,
		AffectWeight:           0.1,
		EyeOpenThreshold:       0.2,
		DrowsyConfidenceGate:   0.7,
		StressedConfidenceGate: 0.6,
	}
}

type Scorer struct {
	cfg ScorerConfig
}

func NewScorer(cfg ScorerConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Score combines the per-cycle metrics, the closure fraction and the affect
// signal into a single value in [0,100]. Each sub-score is clamped before
// weighting; the weighted sum is clamped again.
func (s *Scorer) Score(eyeOpenness, mouthOpenness, closureFraction float64, affect models.AffectSignal) float64 {
	eyeScore := clamp(100*(s.cfg.EyeOpenThreshold-eyeOpenness)*5, 0, 100)
	mouthScore := clamp(mouthOpenness*50, 0, 100)
	closureScore := closureFraction * 100

	affectScore := 0.0
	if affect.DrowsyConfidence > s.cfg.DrowsyConfidenceGate {
		affectScore += 30
	}
	if affect.StressedConfidence > s.cfg.StressedConfidenceGate {
		affectScore += 20
	}

	total := s.cfg.EyeWeight*eyeScore +
		s.cfg.MouthWeight*mouthScore +
		s.cfg.ClosureWeight*closureScore +
		s.cfg.AffectWeight*affectScore

	return clamp(total, 0, 100)
}
