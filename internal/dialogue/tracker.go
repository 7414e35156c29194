// Package dialogue tracks the per-session inquiry state machine:
// questioning depth, dialogue level, and the stage within one
// inquiry cycle.
package dialogue

import (
	"github.com/abhisek/socratiq/internal/assess"
	"github.com/abhisek/socratiq/internal/socratic"
)

// Level is the discourse register of the session.
type Level string

const (
	LevelDialogue  Level = "dialogue"
	LevelStrategic Level = "strategic-discourse"
	LevelMeta      Level = "meta-discourse"
)

// Stage is the phase within one inquiry cycle.
type Stage string

const (
	StageWonderReceive Stage = "wonder-receive"
	StageReflect       Stage = "reflect"
	StageCrossExamine  Stage = "refine-cross-examine"
	StageRestate       Stage = "restate"
	StageRepeat        Stage = "repeat"
)

const (
	minDepth = 1
	maxDepth = 5
)

const recoveryConfidence = 0.2

// Turn carries everything the tracker needs to advance one step.
type Turn struct {
	Assessment         assess.Assessment
	QuestionType       socratic.QuestionType
	UnderstandingCheck bool
	CheckPassed        bool
	Concepts           []string
}

// State is an immutable view of the tracker at a point in time.
type State struct {
	Depth           int
	MaxDepthReached int
	Level           Level
	Stage           Stage
	LastType        socratic.QuestionType
	Concepts        []string
	Turns           int
}

// Tracker owns mutable per-session dialogue state. It is not safe
// for concurrent use; the orchestrator serializes turns per session.
type Tracker struct {
	depth      int
	maxReached int
	level      Level
	stage      Stage
	lastType   socratic.QuestionType

	concepts map[string]bool
	order    []string

	readyStreak         int
	misconceptionStreak int
	metaSeen            bool
	turns               int
}

// NewTracker returns a tracker at the initial state.
func NewTracker() *Tracker {
	return &Tracker{
		depth:      minDepth,
		maxReached: minDepth,
		level:      LevelDialogue,
		stage:      StageWonderReceive,
		concepts:   map[string]bool{},
	}
}

// Advance applies one turn's transition and returns the new state.
func (t *Tracker) Advance(turn Turn) State {
	t.turns++
	a := turn.Assessment
	recovery := a.ConfidenceLevel < recoveryConfidence

	if a.ReadinessForAdvancement {
		t.readyStreak++
	} else {
		t.readyStreak = 0
	}
	if len(a.Misconceptions) > 0 {
		t.misconceptionStreak++
	} else {
		t.misconceptionStreak = 0
	}

	switch {
	case recovery || t.misconceptionStreak >= 2:
		if t.depth > minDepth {
			t.depth--
		}
	case t.readyStreak >= 2 || (turn.UnderstandingCheck && turn.CheckPassed):
		if t.depth < maxDepth {
			t.depth++
		}
		t.readyStreak = 0
	}
	if t.depth > t.maxReached {
		t.maxReached = t.depth
	}

	if recovery {
		t.stage = StageWonderReceive
	} else {
		t.stage = nextStage(t.stage)
	}

	if turn.QuestionType == socratic.TypeMetaQuestioning {
		t.metaSeen = true
	}
	switch {
	case t.maxReached >= 4 && t.metaSeen:
		t.level = LevelMeta
	case t.maxReached >= 3:
		t.level = LevelStrategic
	}

	for _, c := range turn.Concepts {
		if !t.concepts[c] {
			t.concepts[c] = true
			t.order = append(t.order, c)
		}
	}
	if turn.QuestionType != "" {
		t.lastType = turn.QuestionType
	}

	return t.State()
}

// Clone returns an independent copy of the tracker. The orchestrator
// advances the copy first and swaps it in only after the turn's events
// are durably recorded, so a failed write leaves the live tracker at
// the pre-turn state.
func (t *Tracker) Clone() *Tracker {
	c := *t
	c.concepts = make(map[string]bool, len(t.concepts))
	for k, v := range t.concepts {
		c.concepts[k] = v
	}
	c.order = make([]string, len(t.order))
	copy(c.order, t.order)
	return &c
}

// State returns the current state without advancing.
func (t *Tracker) State() State {
	concepts := make([]string, len(t.order))
	copy(concepts, t.order)
	return State{
		Depth:           t.depth,
		MaxDepthReached: t.maxReached,
		Level:           t.level,
		Stage:           t.stage,
		LastType:        t.lastType,
		Concepts:        concepts,
		Turns:           t.turns,
	}
}

func nextStage(s Stage) Stage {
	switch s {
	case StageWonderReceive:
		return StageReflect
	case StageReflect:
		return StageCrossExamine
	case StageCrossExamine:
		return StageRestate
	case StageRestate:
		return StageRepeat
	case StageRepeat:
		return StageReflect
	}
	return StageWonderReceive
}
