package guardrail

// Log prefixes
const (
	LogPrefixCheck = "internal.guardrail.Check"
)

// Pattern sources for the built-in classifiers. The taxonomy itself is a
// product decision; extra blocked terms come in through config.
const (
	// Prompt-injection attempts against the generation layer.
	patternPromptInjection = `(?i)(ignore\s+(all\s+|your\s+|the\s+|previous\s+)*(instructions|rules|guidelines|prompts?)|disregard\s+(all\s+|your\s+|the\s+|previous\s+)*(instructions|rules)|system\s+prompt|developer\s+mode|jailbreak|you\s+are\s+now\s+|pretend\s+(to\s+be|you\s+are))`

	// Solicitation of secrets or of data beyond the caller's own account.
	patternPIIRequest = `(?i)(\b(password|passwords|api\s*-?\s*keys?|credit\s*card\s*(numbers?|details)|card\s+numbers?|social\s+security|ssn|cvv)\b|(other|another|all|every)\s+(customers?|users?|people)('s)?\b|customer\s+(list|database)|entire\s+database)`

	// Abusive, violent, or intrusion-oriented content.
	patternUnsafeContent = `(?i)\b(kill|hurt|attack|bomb|weapon|suicide|hack|hacking|exploit|malware|ransomware|drop\s+table|delete\s+from|select\s+\*\s+from|union\s+select)\b`

	// Output that would expose internals of the system itself.
	patternSystemLeak = `(?i)(system\s+prompt|database\s+schema|sql\s+(query|statement)|api\s*-?\s*key|stack\s+trace|internal\s+error\s+code|connection\s+string|table\s+named)`

	// Output that enumerates other customers' data.
	patternDataLeak = `(?i)((other|another|all|every)\s+(customers?|users?)('s)?\b|customer\s+(list|database)|\ball\s+orders\s+in\b)`

	// Payment-card-shaped digit runs; masked on output, never blocked.
	patternCardNumber = `\b(?:\d[ -]?){13,19}\b`
)

// MaskedValue replaces redacted spans in rewritten output.
const MaskedValue = "[redacted]"

// onTopicTerms is the vocabulary that marks an utterance as in-scope for
// order support. Input with none of these is classified off_topic.
// Greetings, courtesy phrases, and referent pronouns stay in-scope so the
// router can classify farewell and follow-up turns.
var onTopicTerms = []string{
	"order", "orders", "delivery", "deliver", "delivered", "arriving", "arrive",
	"eta", "food", "meal", "restaurant", "driver", "track", "tracking", "status",
	"payment", "paid", "pay", "bill", "billed", "charge", "charged", "receipt",
	"refund", "cancel", "cancellation", "late", "missing", "wrong",
	"hi", "hello", "hey", "thanks", "thank", "bye", "goodbye", "ok", "okay",
	"help", "support", "agent", "human", "manager", "complaint",
	"it", "that", "my", "when", "where", "how",
}
