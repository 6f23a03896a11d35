package guardrail

import "context"

// Check classifies text against the direction-scoped policy taxonomy and
// returns a verdict. It is total: every input, including empty or malformed
// strings, produces a verdict, and it never returns an error.
//
// Reduction is most-restrictive-wins: the first classifier that blocks
// short-circuits; rewrite findings compose, each applied to the previous
// rewritten form; with no findings the text is allowed.
func (e *Engine) Check(text string, direction Direction) Verdict {
	classifiers := e.input
	if direction == DirectionOutput {
		classifiers = e.output
	}

	verdict := Verdict{
		Text:      text,
		Direction: direction,
		Decision:  DecisionAllow,
	}

	rewritten := text
	for _, c := range classifiers {
		if !c.match(rewritten) {
			continue
		}

		if c.decision == DecisionBlock {
			verdict.Categories = []Category{c.category}
			verdict.Decision = DecisionBlock
			verdict.Rewritten = ""
			e.l.Infof(context.Background(), "%s: blocked direction=%s category=%s", LogPrefixCheck, direction, c.category)
			return verdict
		}

		// Rewrite finding: merge and keep scanning.
		verdict.Categories = append(verdict.Categories, c.category)
		verdict.Decision = DecisionRewrite
		if c.rewrite != nil {
			rewritten = c.rewrite(rewritten)
		}
	}

	if verdict.Decision == DecisionRewrite {
		verdict.Rewritten = rewritten
	} else {
		verdict.Categories = []Category{CategoryNone}
	}

	return verdict
}
