package guardrail

// Direction scopes a check to incoming user text or outgoing draft text.
type Direction string

const (
	DirectionInput  Direction = "input"
	DirectionOutput Direction = "output"
)

// Decision is the verdict outcome. Most restrictive wins: block > rewrite > allow.
type Decision string

const (
	DecisionAllow   Decision = "allow"
	DecisionBlock   Decision = "block"
	DecisionRewrite Decision = "rewrite"
)

// Category names the policy concern a classifier guards.
type Category string

const (
	CategoryNone            Category = "none"
	CategoryOffTopic        Category = "off_topic"
	CategoryPIIRequest      Category = "pii_request"
	CategoryUnsafeContent   Category = "unsafe_content"
	CategoryPromptInjection Category = "prompt_injection"
	CategoryBlockedTerm     Category = "blocked_term"
	CategoryDataLeak        Category = "data_leak"
	CategorySystemLeak      Category = "system_leak"
	CategoryPIIExposure     Category = "pii_exposure"
)

// Verdict is the result of one guardrail check.
// Produced fresh per check; never mutated afterwards.
type Verdict struct {
	Text       string
	Direction  Direction
	Categories []Category
	Decision   Decision
	Rewritten  string // set only when Decision is DecisionRewrite
}

// Blocked reports whether the checked text must not proceed.
func (v Verdict) Blocked() bool {
	return v.Decision == DecisionBlock
}

// Released returns the text that may leave the engine: the rewritten form
// when a rewrite was applied, the original otherwise.
func (v Verdict) Released() string {
	if v.Decision == DecisionRewrite {
		return v.Rewritten
	}
	return v.Text
}

// classifier is one ordered policy check. Match must be a pure function of
// its input. Rewrite is set only for rewrite-decision classifiers.
type classifier struct {
	category Category
	decision Decision
	match    func(text string) bool
	rewrite  func(text string) string
}
