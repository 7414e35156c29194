package llm

import (
	"math"
	"testing"
)

func TestLookupCost_KnownModels(t *testing.T) {
	for _, aliases := range []map[string]string{anthropicModels, openaiModels, geminiModels} {
		for short, id := range aliases {
			if LookupCost(id) == nil {
				t.Errorf("no pricing for %s (alias %s)", id, short)
			}
		}
	}
}

func TestLookupCost_UnknownModel(t *testing.T) {
	if c := LookupCost(mockModelID); c != nil {
		t.Errorf("LookupCost(mock) = %+v, want nil", c)
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	got := c.Cost(2_000_000, 400_000)
	if math.Abs(got-4) > 1e-9 {
		t.Errorf("Cost(2M in, 400k out) = %f, want 4", got)
	}
	if c.Cost(0, 0) != 0 {
		t.Error("zero tokens should cost nothing")
	}
}
