package pipeline

import (
	"math"
	"testing"

	"DRIVER_MONITOR/go-backend/internal/models"
)

func TestScoreCalmFace(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	// Open eyes, calm mouth, no closure history: only the mouth contributes
	// (0.3*50 = 15 sub-score, weighted 0.3 -> 4.5).
	got := s.Score(0.25, 0.3, 0, models.AffectSignal{})
	if math.Abs(got-4.5) > 1e-9 {
		t.Errorf("Score = %v, want 4.5", got)
	}
}

func TestScoreBounds(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	cases := []struct {
		name                string
		eye, mouth, closure float64
		affect              models.AffectSignal
	}{
		{"all zero", 0, 0, 0, models.AffectSignal{}},
		{"extreme closed", 0, 10, 1, models.AffectSignal{DrowsyConfidence: 1, StressedConfidence: 1}},
		{"wide open eyes", 5, 0, 0, models.AffectSignal{}},
		{"huge mouth", 0.3, 100, 0, models.AffectSignal{}},
	}
	for _, c := range cases {
		got := s.Score(c.eye, c.mouth, c.closure, c.affect)
		if got < 0 || got > 100 {
			t.Errorf("%s: Score = %v, out of [0,100]", c.name, got)
		}
	}
}

func TestScoreEyeContribution(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	// Fully closed eyes max out the eye sub-score: 0.4*100 = 40.
	got := s.Score(0, 0, 0, models.AffectSignal{})
	if math.Abs(got-40) > 1e-9 {
		t.Errorf("Score with closed eyes = %v, want 40", got)
	}

	// Above the openness threshold the eye sub-score is zero.
	got = s.Score(0.2, 0, 0, models.AffectSignal{})
	if got != 0 {
		t.Errorf("Score at threshold = %v, want 0", got)
	}
}

func TestScoreAffectGates(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	// Drowsy gate alone: 0.1*30 = 3.
	got := s.Score(0.25, 0, 0, models.AffectSignal{DrowsyConfidence: 0.71})
	if math.Abs(got-3) > 1e-9 {
		t.Errorf("Score with drowsy affect = %v, want 3", got)
	}

	// Both gates: 0.1*(30+20) = 5.
	got = s.Score(0.25, 0, 0, models.AffectSignal{DrowsyConfidence: 0.71, StressedConfidence: 0.61})
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("Score with both affect gates = %v, want 5", got)
	}

	// Below the gates the affect signal contributes nothing.
	got = s.Score(0.25, 0, 0, models.AffectSignal{DrowsyConfidence: 0.7, StressedConfidence: 0.6})
	if got != 0 {
		t.Errorf("Score with sub-gate affect = %v, want 0", got)
	}
}

func TestScoreClosureContribution(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	// Closure fraction 0.5 -> sub-score 50, weighted 0.2 -> 10.
	got := s.Score(0.25, 0, 0.5, models.AffectSignal{})
	if math.Abs(got-10) > 1e-9 {
		t.Errorf("Score with closure 0.5 = %v, want 10", got)
	}
}
