package adaptive

import (
	"testing"

	"github.com/abhisek/socratiq/internal/profile"
	"github.com/abhisek/socratiq/internal/store"
)

func sessions(scores ...float64) []store.SessionPerformanceRecord {
	out := make([]store.SessionPerformanceRecord, len(scores))
	for i, s := range scores {
		out[i] = store.SessionPerformanceRecord{
			SessionEndData: store.SessionEndData{MasteryScore: s},
		}
	}
	return out
}

func profileAt(level Level) *profile.Profile {
	p := profile.Default()
	p.DifficultyLevel = string(level)
	return p
}

func TestIncreaseDecrease_InverseAtIntermediate(t *testing.T) {
	if got := Increase(Decrease(Intermediate)); got != Intermediate {
		t.Errorf("Increase(Decrease(intermediate)) = %q, want intermediate", got)
	}
	if got := Decrease(Increase(Intermediate)); got != Intermediate {
		t.Errorf("Decrease(Increase(intermediate)) = %q, want intermediate", got)
	}
}

func TestIncreaseDecrease_Saturate(t *testing.T) {
	if got := Increase(Advanced); got != Advanced {
		t.Errorf("Increase(advanced) = %q, want advanced", got)
	}
	if got := Decrease(Beginner); got != Beginner {
		t.Errorf("Decrease(beginner) = %q, want beginner", got)
	}
}

func TestCalculate_ConsistentHighMasteryEscalates(t *testing.T) {
	recent := sessions(0.9, 0.92, 0.9, 0.91, 0.9)

	d := Calculate(recent, profileAt(Intermediate))
	if d.RecommendedLevel != Advanced {
		t.Errorf("recommended = %q (avg %.2f, conf %.2f), want advanced",
			d.RecommendedLevel, d.AverageSuccess, d.Confidence)
	}

	d = Calculate(recent, profileAt(Advanced))
	if d.RecommendedLevel != Advanced {
		t.Errorf("recommended at advanced = %q, want unchanged advanced", d.RecommendedLevel)
	}
}

func TestCalculate_LowMasteryDeescalates(t *testing.T) {
	d := Calculate(sessions(0.3, 0.35, 0.3, 0.32, 0.3, 0.31), profileAt(Intermediate))
	if d.RecommendedLevel != Beginner {
		t.Errorf("recommended = %q (avg %.2f, conf %.2f), want beginner",
			d.RecommendedLevel, d.AverageSuccess, d.Confidence)
	}
}

func TestCalculate_DecliningVelocityDeescalates(t *testing.T) {
	d := Calculate(sessions(0.8, 0.75, 0.7, 0.6, 0.55, 0.5), profileAt(Advanced))
	if d.Velocity >= 0 {
		t.Fatalf("velocity = %v, want negative", d.Velocity)
	}
	if d.Trend != TrendDeclining {
		t.Fatalf("trend = %q, want declining", d.Trend)
	}
	if d.RecommendedLevel != Intermediate {
		t.Errorf("recommended = %q, want intermediate", d.RecommendedLevel)
	}
}

func TestCalculate_NoHistoryKeepsLevel(t *testing.T) {
	d := Calculate(nil, profileAt(Intermediate))
	if d.RecommendedLevel != Intermediate || d.Trend != TrendStable {
		t.Errorf("no-history result = %+v, want unchanged intermediate/stable", d)
	}
}

func TestCalculate_AnalyticalOverrideEscalates(t *testing.T) {
	p := profileAt(Intermediate)
	p.LearningStyle = profile.StyleAnalytical

	// Solid but below the 0.85 escalation bar: the style override
	// should still push one level up.
	d := Calculate(sessions(0.75, 0.78, 0.76, 0.75, 0.77), p)
	if d.RecommendedLevel != Advanced {
		t.Errorf("analytical override recommended = %q, want advanced", d.RecommendedLevel)
	}
}

func TestCalculate_VisualSlowResponsesHoldLevel(t *testing.T) {
	p := profileAt(Intermediate)
	p.LearningStyle = profile.StyleVisual

	recent := sessions(0.9, 0.92, 0.9, 0.91, 0.9)
	for i := range recent {
		recent[i].AvgResponseMs = 20000
	}
	d := Calculate(recent, p)
	if d.RecommendedLevel != Intermediate {
		t.Errorf("visual slow-response recommended = %q, want held at intermediate", d.RecommendedLevel)
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("advanced"); got != Advanced {
		t.Errorf("ParseLevel(advanced) = %q", got)
	}
	if got := ParseLevel("bogus"); got != Beginner {
		t.Errorf("ParseLevel(bogus) = %q, want beginner", got)
	}
}
