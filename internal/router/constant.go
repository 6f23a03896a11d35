package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Classification patterns. Order of evaluation is fixed in Route:
// escalation, farewell, payment_info, delivery_eta, order_status.
// The router must be deterministic, so classification is rule-based — the
// same utterance always yields the same intent.
const (
	patternEscalation = `(?i)\b(refund|cancel|cancellation|angry|furious|manager|human|agent|complaint|complain|unacceptable|terrible|awful|ridiculous|speak\s+to\s+someone)\b`

	patternFarewell = `(?i)\b(bye|goodbye|thanks|thank\s+you|that('s|\s+is)\s+all|all\s+good|no\s+more\s+questions)\b`

	patternPayment = `(?i)\b(paid|payment|pay|charge|charged|bill|billed|billing|receipt|amount|cost|price|refunded|how\s+much)\b`

	patternETA = `(?i)\b(eta|when|arrive|arriving|arrival|late|how\s+long|soon|time\s+(will|is))\b`

	patternOrderMention = `(?i)\b(order|status|where|track|tracking|update|progress|delivery|delivered|food|meal)\b`
)

// Order id extraction: "order 123", "order #123", "#123", or a bare digit
// run of plausible id length.
const (
	patternExplicitOrderID = `(?i)order\s*#?\s*(\d{1,10})\b`
	patternHashOrderID     = `#(\d{1,10})\b`
	patternBareOrderID     = `\b(\d{1,10})\b`
)
