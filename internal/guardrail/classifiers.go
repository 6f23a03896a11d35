package guardrail

import (
	"regexp"
	"strings"
)

var (
	rePromptInjection = regexp.MustCompile(patternPromptInjection)
	rePIIRequest      = regexp.MustCompile(patternPIIRequest)
	reUnsafeContent   = regexp.MustCompile(patternUnsafeContent)
	reSystemLeak      = regexp.MustCompile(patternSystemLeak)
	reDataLeak        = regexp.MustCompile(patternDataLeak)
	reCardNumber      = regexp.MustCompile(patternCardNumber)
	reWord            = regexp.MustCompile(`[a-z0-9#]+`)
)

// buildInputClassifiers returns the ordered input-direction checks.
// Order matters: the first blocking match short-circuits, so the most
// specific categories run before the off-topic catch-all.
func buildInputClassifiers(extraTerms []string) []classifier {
	cs := []classifier{
		{category: CategoryPromptInjection, decision: DecisionBlock, match: rePromptInjection.MatchString},
		{category: CategoryPIIRequest, decision: DecisionBlock, match: rePIIRequest.MatchString},
		{category: CategoryUnsafeContent, decision: DecisionBlock, match: reUnsafeContent.MatchString},
	}
	if len(extraTerms) > 0 {
		cs = append(cs, blockedTermClassifier(extraTerms))
	}
	cs = append(cs, classifier{
		category: CategoryOffTopic,
		decision: DecisionBlock,
		match:    isOffTopic,
	})
	return cs
}

// buildOutputClassifiers returns the ordered output-direction checks.
func buildOutputClassifiers(extraTerms []string) []classifier {
	cs := []classifier{
		{category: CategoryDataLeak, decision: DecisionBlock, match: reDataLeak.MatchString},
		{category: CategorySystemLeak, decision: DecisionBlock, match: reSystemLeak.MatchString},
	}
	if len(extraTerms) > 0 {
		cs = append(cs, blockedTermClassifier(extraTerms))
	}
	cs = append(cs, classifier{
		category: CategoryPIIExposure,
		decision: DecisionRewrite,
		match:    reCardNumber.MatchString,
		rewrite: func(text string) string {
			return reCardNumber.ReplaceAllString(text, MaskedValue)
		},
	})
	return cs
}

// blockedTermClassifier blocks on any configured extra term, matched
// case-insensitively as a substring.
func blockedTermClassifier(terms []string) classifier {
	lowered := make([]string, len(terms))
	for i, t := range terms {
		lowered[i] = strings.ToLower(t)
	}
	return classifier{
		category: CategoryBlockedTerm,
		decision: DecisionBlock,
		match: func(text string) bool {
			lt := strings.ToLower(text)
			for _, term := range lowered {
				if strings.Contains(lt, term) {
					return true
				}
			}
			return false
		},
	}
}

// isOffTopic reports whether the text carries no order-support vocabulary
// at all. Digit runs count as on-topic since they are likely order ids.
func isOffTopic(text string) bool {
	words := reWord.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		// Empty or non-lexical input still gets a verdict: nothing to
		// route on, so it is out of scope.
		return true
	}
	for _, w := range words {
		if strings.IndexFunc(w, isDigit) >= 0 {
			return false
		}
		for _, term := range onTopicTerms {
			if w == term {
				return false
			}
		}
	}
	return true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
