package engine

import (
	"fmt"
	"strings"

	"github.com/abhisek/socratiq/internal/adaptive"
	"github.com/abhisek/socratiq/internal/catalog"
	"github.com/abhisek/socratiq/internal/dialogue"
	"github.com/abhisek/socratiq/internal/llm"
	"github.com/abhisek/socratiq/internal/problem"
	"github.com/abhisek/socratiq/internal/socratic"
)

// turnSchema constrains the tutor's reply to a single question plus
// the concepts it targets.
func turnSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "socratic-turn",
		Description: "One Socratic tutoring question and the math concepts it targets",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The next question to ask the student. Must not state the answer.",
				},
				"concepts": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Math concepts this question targets",
				},
			},
			"required":             []any{"question", "concepts"},
			"additionalProperties": false,
		},
	}
}

// turnReply is the decoded form of a socratic-turn response.
type turnReply struct {
	Question string   `json:"question"`
	Concepts []string `json:"concepts"`
}

// systemPrompt sets the tutor persona, the never-answer constraint,
// and the current pedagogical posture.
func systemPrompt(p problem.Parsed, strat adaptive.Strategy, state dialogue.State) string {
	var b strings.Builder
	b.WriteString("You are a Socratic math tutor. You guide students to discover answers themselves.\n")
	b.WriteString("You NEVER state the answer, a final number, or a complete solution step. ")
	b.WriteString("You respond with exactly one question per turn.\n\n")

	fmt.Fprintf(&b, "Problem (%s): %s\n", p.ProblemType, p.Content)
	if len(p.Concepts) > 0 {
		fmt.Fprintf(&b, "Concepts in play: %s\n", strings.Join(p.Concepts, ", "))
	}
	fmt.Fprintf(&b, "Teaching approach: %s. Questioning style: %s. Feedback: %s. Pacing: %s.\n",
		strat.Approach, strat.QuestioningStyle, strat.FeedbackStyle, strat.Pacing)
	fmt.Fprintf(&b, "Dialogue depth: %d of 5. Inquiry stage: %s.\n", state.Depth, state.Stage)
	return b.String()
}

// turnPrompt frames one student response for the model, naming the
// question type to produce and offering catalog stems as register
// examples.
func turnPrompt(c *catalog.Catalog, qtype socratic.QuestionType, stage dialogue.Stage, studentUtterance string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The student said: %q\n\n", studentUtterance)
	fmt.Fprintf(&b, "Ask one %s question.", qtype)

	if stems := c.Stems[string(qtype)]; len(stems) > 0 {
		b.WriteString(" Questions of this kind sound like:\n")
		for _, s := range stems {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	if prompts := c.Metacognitive[string(stage)]; len(prompts) > 0 {
		fmt.Fprintf(&b, "The dialogue is in its %s stage; you may borrow the register of:\n- %s\n",
			stage, prompts[0])
	}
	b.WriteString("Respond with the question and the concepts it targets.")
	return b.String()
}

// openingPrompt asks for the session's first question.
func openingPrompt(qtype socratic.QuestionType) string {
	return fmt.Sprintf(
		"Open the session. Ask one %s question that gets the student talking about what the problem is asking. Respond with the question and the concepts it targets.",
		qtype)
}

// fallbackQuestion picks a canned stem when the completion service
// cannot be reached at session start. Mid-session failures are
// surfaced to the caller instead.
func fallbackQuestion(c *catalog.Catalog, qtype socratic.QuestionType) string {
	if stems := c.Stems[string(qtype)]; len(stems) > 0 {
		return stems[0]
	}
	return "What is this problem asking, in your own words?"
}
