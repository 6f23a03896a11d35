package router

import (
	"context"
	"regexp"
)

var (
	reEscalation   = regexp.MustCompile(patternEscalation)
	reFarewell     = regexp.MustCompile(patternFarewell)
	rePayment      = regexp.MustCompile(patternPayment)
	reETA          = regexp.MustCompile(patternETA)
	reOrderMention = regexp.MustCompile(patternOrderMention)

	reExplicitID = regexp.MustCompile(patternExplicitOrderID)
	reHashID     = regexp.MustCompile(patternHashOrderID)
	reBareID     = regexp.MustCompile(patternBareOrderID)
)

// Route classifies the utterance into exactly one intent and extracts its
// parameters. lastOrderID is the session's previously resolved referent,
// used for pronoun/ellipsis turns ("is it paid?"); callers pass "" when no
// referent exists. Route is never invoked on guardrail-blocked input.
func (r *RuleRouter) Route(ctx context.Context, utterance string, lastOrderID string) Intent {
	name := r.classify(utterance)

	intent := Intent{Name: name, Params: map[string]string{}}
	if !intent.NeedsFacts() {
		r.l.Infof(ctx, "%s: classified as %s", LogPrefixRoute, name)
		return intent
	}

	if id, ok := extractOrderID(utterance); ok {
		intent.Params[ParamOrderID] = id
	} else if lastOrderID != "" {
		// Ellipsis turn: resolve against the last-mentioned order.
		intent.Params[ParamOrderID] = lastOrderID
	} else {
		intent.MissingParameter = true
	}

	r.l.Infof(ctx, "%s: classified as %s (order_id=%q missing=%t)",
		LogPrefixRoute, name, intent.Params[ParamOrderID], intent.MissingParameter)
	return intent
}

// classify applies the ordered rule set. Escalation wins over everything so
// an angry refund demand about an order still reaches a human; farewell is
// checked next so courtesy turns do not trigger a lookup; the remaining
// rules narrow from most to least specific.
func (r *RuleRouter) classify(utterance string) IntentName {
	switch {
	case reEscalation.MatchString(utterance):
		return IntentEscalation
	case reFarewell.MatchString(utterance) && !rePayment.MatchString(utterance) && !reETA.MatchString(utterance) && !reOrderMention.MatchString(utterance):
		return IntentFarewell
	case rePayment.MatchString(utterance):
		return IntentPaymentInfo
	case reETA.MatchString(utterance):
		return IntentDeliveryETA
	case reOrderMention.MatchString(utterance):
		return IntentOrderStatus
	default:
		return IntentUnsupported
	}
}

// extractOrderID pulls an explicit order id out of the utterance.
// Preference order: "order 123" / "order #123", then "#123", then a bare
// digit run.
func extractOrderID(utterance string) (string, bool) {
	if m := reExplicitID.FindStringSubmatch(utterance); m != nil {
		return m[1], true
	}
	if m := reHashID.FindStringSubmatch(utterance); m != nil {
		return m[1], true
	}
	if m := reBareID.FindStringSubmatch(utterance); m != nil {
		return m[1], true
	}
	return "", false
}
