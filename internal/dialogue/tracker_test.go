package dialogue

import (
	"testing"

	"github.com/abhisek/socratiq/internal/assess"
	"github.com/abhisek/socratiq/internal/socratic"
)

func readyTurn() Turn {
	return Turn{
		Assessment: assess.Assessment{
			ConfidenceLevel:         0.9,
			ReadinessForAdvancement: true,
		},
		QuestionType: socratic.TypeEvidence,
	}
}

func strugglingTurn() Turn {
	return Turn{
		Assessment:   assess.Assessment{ConfidenceLevel: 0.1},
		QuestionType: socratic.TypeClarification,
	}
}

func TestTracker_InitialState(t *testing.T) {
	tr := NewTracker()
	st := tr.State()
	if st.Depth != 1 || st.MaxDepthReached != 1 {
		t.Errorf("initial depth = %d/%d, want 1/1", st.Depth, st.MaxDepthReached)
	}
	if st.Level != LevelDialogue {
		t.Errorf("initial level = %q, want dialogue", st.Level)
	}
	if st.Stage != StageWonderReceive {
		t.Errorf("initial stage = %q, want wonder-receive", st.Stage)
	}
}

func TestTracker_TwoReadyTurnsIncreaseDepth(t *testing.T) {
	tr := NewTracker()
	st := tr.Advance(readyTurn())
	if st.Depth != 1 {
		t.Errorf("depth after one ready turn = %d, want 1", st.Depth)
	}
	st = tr.Advance(readyTurn())
	if st.Depth != 2 {
		t.Errorf("depth after two ready turns = %d, want 2", st.Depth)
	}
}

func TestTracker_PassedCheckIncreasesDepth(t *testing.T) {
	tr := NewTracker()
	st := tr.Advance(Turn{
		Assessment:         assess.Assessment{ConfidenceLevel: 0.8},
		QuestionType:       socratic.TypeEvidence,
		UnderstandingCheck: true,
		CheckPassed:        true,
	})
	if st.Depth != 2 {
		t.Errorf("depth after passed check = %d, want 2", st.Depth)
	}
}

func TestTracker_LowConfidenceDecreasesDepthAndResetsStage(t *testing.T) {
	tr := NewTracker()
	tr.Advance(readyTurn())
	tr.Advance(readyTurn())
	tr.Advance(readyTurn())
	tr.Advance(readyTurn()) // depth 3, stage mid-cycle

	st := tr.Advance(strugglingTurn())
	if st.Depth != 2 {
		t.Errorf("depth after recovery turn = %d, want 2", st.Depth)
	}
	if st.Stage != StageWonderReceive {
		t.Errorf("stage after recovery = %q, want wonder-receive", st.Stage)
	}
}

func TestTracker_TwoMisconceptionTurnsDecreaseDepth(t *testing.T) {
	tr := NewTracker()
	tr.Advance(readyTurn())
	tr.Advance(readyTurn())
	tr.Advance(readyTurn())
	tr.Advance(readyTurn()) // depth 3

	mis := Turn{
		Assessment: assess.Assessment{
			ConfidenceLevel: 0.5,
			Misconceptions:  []string{"overgeneralization:always"},
		},
		QuestionType: socratic.TypeClarification,
	}
	st := tr.Advance(mis)
	if st.Depth != 3 {
		t.Errorf("depth after one misconception turn = %d, want unchanged 3", st.Depth)
	}
	st = tr.Advance(mis)
	if st.Depth != 2 {
		t.Errorf("depth after two misconception turns = %d, want 2", st.Depth)
	}
}

func TestTracker_DepthBounds(t *testing.T) {
	tr := NewTracker()
	for range 20 {
		st := tr.Advance(readyTurn())
		if st.Depth > 5 {
			t.Fatalf("depth exceeded cap: %d", st.Depth)
		}
	}
	if st := tr.State(); st.Depth != 5 {
		t.Errorf("depth after many ready turns = %d, want 5", st.Depth)
	}
	for range 20 {
		st := tr.Advance(strugglingTurn())
		if st.Depth < 1 {
			t.Fatalf("depth fell below floor: %d", st.Depth)
		}
	}
	if st := tr.State(); st.Depth != 1 {
		t.Errorf("depth after many struggling turns = %d, want 1", st.Depth)
	}
}

func TestTracker_MaxDepthNeverBelowDepth(t *testing.T) {
	tr := NewTracker()
	turns := []Turn{
		readyTurn(), readyTurn(), strugglingTurn(), readyTurn(),
		readyTurn(), readyTurn(), strugglingTurn(), strugglingTurn(),
	}
	for i, turn := range turns {
		st := tr.Advance(turn)
		if st.MaxDepthReached < st.Depth {
			t.Fatalf("turn %d: maxDepthReached %d < depth %d", i, st.MaxDepthReached, st.Depth)
		}
	}
}

func TestTracker_DepthChangesAtMostOnePerTurn(t *testing.T) {
	tr := NewTracker()
	prev := tr.State().Depth
	turns := []Turn{
		readyTurn(), readyTurn(), readyTurn(), strugglingTurn(),
		readyTurn(), readyTurn(), strugglingTurn(), readyTurn(),
	}
	for i, turn := range turns {
		st := tr.Advance(turn)
		if diff := st.Depth - prev; diff > 1 || diff < -1 {
			t.Fatalf("turn %d: depth jumped from %d to %d", i, prev, st.Depth)
		}
		prev = st.Depth
	}
}

func TestTracker_ThreeHighConfidenceTurns(t *testing.T) {
	tr := NewTracker()
	var st State
	for range 3 {
		st = tr.Advance(readyTurn())
	}
	if st.Depth > 3 {
		t.Errorf("depth after three ready turns = %d, want at most 3", st.Depth)
	}
	for range 3 {
		st = tr.Advance(readyTurn())
	}
	if st.MaxDepthReached < 3 {
		t.Fatalf("maxDepthReached = %d, want >= 3", st.MaxDepthReached)
	}
	if st.Level != LevelStrategic {
		t.Errorf("level at maxDepth %d = %q, want strategic-discourse", st.MaxDepthReached, st.Level)
	}
}

func TestTracker_MetaDiscourseRequiresMetaQuestion(t *testing.T) {
	tr := NewTracker()
	for range 8 {
		tr.Advance(readyTurn())
	}
	if st := tr.State(); st.Level != LevelStrategic {
		t.Fatalf("level without meta-questioning = %q, want strategic-discourse", st.Level)
	}

	turn := readyTurn()
	turn.QuestionType = socratic.TypeMetaQuestioning
	st := tr.Advance(turn)
	if st.Level != LevelMeta {
		t.Errorf("level after meta-questioning at depth %d = %q, want meta-discourse",
			st.MaxDepthReached, st.Level)
	}
}

func TestTracker_CycleStageProgression(t *testing.T) {
	tr := NewTracker()
	want := []Stage{
		StageReflect, StageCrossExamine, StageRestate, StageRepeat,
		StageReflect, StageCrossExamine,
	}
	for i, w := range want {
		st := tr.Advance(readyTurn())
		if st.Stage != w {
			t.Fatalf("turn %d: stage = %q, want %q", i, st.Stage, w)
		}
	}
}

func TestTracker_ConceptsAccumulateWithoutDuplicates(t *testing.T) {
	tr := NewTracker()
	turn := readyTurn()
	turn.Concepts = []string{"fractions", "equivalence"}
	tr.Advance(turn)
	turn.Concepts = []string{"equivalence", "common-denominator"}
	st := tr.Advance(turn)

	want := []string{"fractions", "equivalence", "common-denominator"}
	if len(st.Concepts) != len(want) {
		t.Fatalf("concepts = %v, want %v", st.Concepts, want)
	}
	for i, c := range want {
		if st.Concepts[i] != c {
			t.Errorf("concepts[%d] = %q, want %q", i, st.Concepts[i], c)
		}
	}
}

func TestTracker_CloneIsIndependent(t *testing.T) {
	tr := NewTracker()
	turn := readyTurn()
	turn.Concepts = []string{"fractions"}
	tr.Advance(turn)
	before := tr.State()

	clone := tr.Clone()
	next := readyTurn()
	next.Concepts = []string{"equivalence"}
	clone.Advance(next)
	clone.Advance(strugglingTurn())

	st := tr.State()
	if st.Depth != before.Depth || st.Stage != before.Stage || st.Turns != before.Turns {
		t.Errorf("advancing a clone mutated the original: %+v vs %+v", st, before)
	}
	if len(st.Concepts) != 1 || st.Concepts[0] != "fractions" {
		t.Errorf("original concepts = %v, want [fractions]", st.Concepts)
	}
	if cs := clone.State(); cs.Turns != before.Turns+2 {
		t.Errorf("clone turns = %d, want %d", cs.Turns, before.Turns+2)
	}
}
