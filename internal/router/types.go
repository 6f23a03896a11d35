package router

// IntentName represents the classified purpose of a user utterance
type IntentName string

const (
	IntentOrderStatus IntentName = "order_status"
	IntentDeliveryETA IntentName = "delivery_eta"
	IntentPaymentInfo IntentName = "payment_info"
	IntentEscalation  IntentName = "escalation"
	IntentFarewell    IntentName = "farewell"
	IntentUnsupported IntentName = "unsupported"
)

// ParamOrderID is the required parameter for order-grounded intents.
const ParamOrderID = "order_id"

// Intent is the routing result: exactly one intent per utterance, plus the
// extracted parameters. MissingParameter marks an order-grounded intent with
// no resolvable order id — a valid state, handled with a clarifying
// follow-up rather than a failure.
type Intent struct {
	Name             IntentName
	Params           map[string]string
	MissingParameter bool
}

// OrderID returns the resolved order id, if any.
func (i Intent) OrderID() (string, bool) {
	id, ok := i.Params[ParamOrderID]
	return id, ok && id != ""
}

// NeedsFacts reports whether the intent requires an order fact lookup.
func (i Intent) NeedsFacts() bool {
	switch i.Name {
	case IntentOrderStatus, IntentDeliveryETA, IntentPaymentInfo:
		return true
	default:
		return false
	}
}
