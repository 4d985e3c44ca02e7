package domain

import "strings"

// FulfillmentRequest is the body of one upstream order placement.
type FulfillmentRequest struct {
	BeneficiaryNumber string    `json:"beneficiary_number" validate:"required,numeric"`
	NetworkID         NetworkID `json:"network_id" validate:"required,oneof=9 10 11 12"`
	Size              string    `json:"size" validate:"required"`
}

type FulfillmentReceipt struct {
	ReferenceID string
}

var upstreamStatusMap = map[string]OrderStatus{
	"successful": OrderStatusCompleted,
	"completed":  OrderStatusCompleted,
	"delivered":  OrderStatusCompleted,
	"processing": OrderStatusProcessing,
	"pending":    OrderStatusProcessing,
	"failed":     OrderStatusCancelled,
	"cancelled":  OrderStatusCancelled,
}

// MapUpstreamStatus translates a transaction status reported by the fulfillment API
// into the local vocabulary. Unknown values report false.
func MapUpstreamStatus(external string) (OrderStatus, bool) {
	status, ok := upstreamStatusMap[strings.ToLower(external)]
	return status, ok
}

// PushResult summarizes one push of an order to the fulfillment API.
type PushResult struct {
	OrderID     uint64    `json:"order_id"`
	Succeeded   int       `json:"succeeded"`
	Failed      int       `json:"failed"`
	APIStatus   APIStatus `json:"api_status"`
	ReferenceID string    `json:"reference_id,omitempty"`
}

type SyncOutcome string

const (
	SyncOutcomeUpdated   SyncOutcome = "updated"
	SyncOutcomeUnchanged SyncOutcome = "unchanged"
	SyncOutcomeUnknown   SyncOutcome = "unknown"
	SyncOutcomeFailed    SyncOutcome = "failed"
	SyncOutcomeRaced     SyncOutcome = "raced"
)

// SyncReport summarizes one status sync run.
type SyncReport struct {
	RunID     string `json:"run_id"`
	Scanned   int    `json:"scanned"`
	Updated   int    `json:"updated"`
	Unchanged int    `json:"unchanged"`
	Unknown   int    `json:"unknown"`
	Failed    int    `json:"failed"`
	Raced     int    `json:"raced"`
	Notified  int    `json:"notified"`
}

func (r *SyncReport) Add(outcome SyncOutcome) {
	switch outcome {
	case SyncOutcomeUpdated:
		r.Updated++
	case SyncOutcomeUnchanged:
		r.Unchanged++
	case SyncOutcomeUnknown:
		r.Unknown++
	case SyncOutcomeFailed:
		r.Failed++
	case SyncOutcomeRaced:
		r.Raced++
	}
}
