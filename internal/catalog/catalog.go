// Package catalog holds the static pattern tables, prompt templates,
// and concept vocabularies the dialogue engine matches against. The
// tables are plain data: they are built once at startup and injected
// into the assessor, selector, and violation detector rather than read
// from package-level mutable state.
package catalog

// Catalog is an immutable lookup of indicator patterns and prompts.
// All pattern matching is case-insensitive substring matching against
// these tables; callers must not mutate the slices.
type Catalog struct {
	// Uncertainty phrases signal low confidence ("I don't know").
	Uncertainty []string

	// Confidence phrases signal high confidence ("I'm sure").
	Confidence []string

	// Hedging phrases signal tentative confidence ("maybe").
	Hedging []string

	// Overgeneralization phrases flag a likely misconception ("always").
	Overgeneralization []string

	// Connectives are explanatory markers ("because", "since").
	Connectives []string

	// Exemplars are example-giving markers ("for example", "like").
	Exemplars []string

	// Transfer phrases signal the student applying an idea to a new case.
	Transfer []string

	// Depth holds the five independent indicator classes used to score
	// depth of thinking. One matched class contributes one point.
	Depth DepthIndicators

	// Leak holds direct-answer leakage patterns for the violation detector.
	Leak LeakPatterns

	// Metacognitive maps a cycle stage name to prompt templates that
	// nudge the student to reflect on their own thinking.
	Metacognitive map[string][]string

	// Stems maps a question type name to fallback question stems used
	// when no completion service is available.
	Stems map[string][]string

	// Vocab maps a problem type name to its domain concept vocabulary.
	Vocab map[string][]string
}

// DepthIndicators are the five marker classes for depth-of-thinking
// scoring: questioning, reasoning, analysis, abstraction, evaluation.
type DepthIndicators struct {
	Questioning []string
	Reasoning   []string
	Analysis    []string
	Abstraction []string
	Evaluation  []string
}

// Classes returns the indicator classes in scoring order.
func (d DepthIndicators) Classes() [][]string {
	return [][]string{d.Questioning, d.Reasoning, d.Analysis, d.Abstraction, d.Evaluation}
}

// LeakPatterns describe tutor utterances that state a solution instead
// of asking a guiding question.
type LeakPatterns struct {
	// Phrases are literal giveaway phrases ("the answer is").
	Phrases []string

	// Imperatives are solution-stating sentence openers ("just multiply").
	Imperatives []string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Uncertainty: []string{
			"i don't know", "i dont know", "not sure", "no idea",
			"confused", "stuck", "lost", "don't understand",
			"dont understand", "don't get it", "dont get it",
		},
		Confidence: []string{
			"i'm sure", "im sure", "i am sure", "definitely",
			"certainly", "i know", "obviously", "of course",
			"absolutely", "positive",
		},
		Hedging: []string{
			"maybe", "perhaps", "might", "i think", "i guess",
			"probably", "could be", "possibly",
		},
		Overgeneralization: []string{
			"always", "never", "every time", "all of them",
			"none of them", "everything", "nothing works",
		},
		Connectives: []string{
			"because", "since", "therefore", "so that", "which means",
			"as a result",
		},
		Exemplars: []string{
			"for example", "for instance", "like when", "such as",
			"like how",
		},
		Transfer: []string{
			"what if", "would it work", "another problem", "similar to",
			"same as when", "apply this",
		},
		Depth: DepthIndicators{
			Questioning: []string{"why", "how come", "what if", "i wonder"},
			Reasoning:   []string{"because", "since", "therefore", "it follows", "which means"},
			Analysis:    []string{"compare", "difference", "break down", "part of", "depends on", "relates to"},
			Abstraction: []string{"in general", "pattern", "rule", "concept", "principle", "abstract"},
			Evaluation:  []string{"better", "worse", "best way", "makes sense", "valid", "check my"},
		},
		Leak: LeakPatterns{
			Phrases: []string{
				"the answer is", "the solution is", "the result is",
				"equals exactly", "you get the answer", "the correct answer",
				"the final answer",
			},
			Imperatives: []string{
				"just multiply", "just divide", "just add", "just subtract",
				"simply solve", "simply substitute", "plug in the value",
			},
		},
		Metacognitive: map[string][]string{
			"wonder-receive": {
				"Before we dig in, what do you already notice about this problem?",
				"What is this problem really asking, in your own words?",
			},
			"reflect": {
				"Pause for a moment. What part feels most solid to you so far?",
				"What part of your thinking are you least sure about?",
			},
			"refine-cross-examine": {
				"If you had to defend that step to a skeptic, what would you say?",
				"Is there a case where your approach would break down?",
			},
			"restate": {
				"Can you restate what we discovered, as if teaching a friend?",
				"Summarize where we are in one or two sentences.",
			},
			"repeat": {
				"Could the same idea help with a different problem?",
				"Where else might this pattern show up?",
			},
		},
		Stems: map[string][]string{
			"clarification": {
				"What do you mean when you say that?",
				"Can you put the problem into your own words?",
				"Which part feels unclear right now?",
			},
			"assumptions": {
				"What are you taking for granted here?",
				"What would have to be true for that step to work?",
			},
			"evidence": {
				"What makes you believe that?",
				"How could you check whether that is right?",
				"Can you walk me through how you got there?",
			},
			"perspective": {
				"Is there another way to look at this?",
				"How would someone who disagreed argue against you?",
			},
			"implications": {
				"If that is true, what follows from it?",
				"What would happen if you changed that number?",
			},
			"meta-questioning": {
				"What strategy are you using, and why that one?",
				"How is your thinking different now from when we started?",
			},
		},
		Vocab: map[string][]string{
			"algebra": {
				"variable", "equation", "expression", "coefficient",
				"solve", "substitution", "balance", "inequality",
			},
			"geometry": {
				"angle", "triangle", "area", "perimeter", "circle",
				"parallel", "symmetry", "volume",
			},
			"fractions": {
				"fraction", "numerator", "denominator", "equivalent",
				"common denominator", "mixed number",
			},
			"arithmetic": {
				"addition", "subtraction", "multiplication", "division",
				"remainder", "place value", "carrying",
			},
			"word-problem": {
				"units", "rate", "total", "difference", "per",
				"remaining", "altogether",
			},
		},
	}
}
