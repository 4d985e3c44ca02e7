package domain_test

import (
	"errors"
	"testing"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNetworkIDFromProduct(t *testing.T) {
	tests := []struct {
		name    string
		product string
		expID   domain.NetworkID
		expOK   bool
	}{
		{name: "mtn", product: "MTN 10GB", expID: domain.NetworkMTN, expOK: true},
		{name: "telecel", product: "Telecel 2GB", expID: domain.NetworkTelecel, expOK: true},
		{name: "ishare", product: "AT iShare 5GB", expID: domain.NetworkIShare, expOK: true},
		{name: "bigtime", product: "AT BIGTIME 20GB", expID: domain.NetworkBigTime, expOK: true},
		{name: "first keyword wins", product: "mtn ishare combo", expID: domain.NetworkMTN, expOK: true},
		{name: "unknown", product: "Unknown Bundle", expOK: false},
		{name: "empty", product: "", expOK: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id, ok := domain.NetworkIDFromProduct(test.product)
			assert.Equal(t, test.expOK, ok)
			assert.Equal(t, test.expID, id)
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := map[string]string{
		"0241234567":      "0241234567",
		"+233241234567":   "233241234567",
		"024 123 4567":    "0241234567",
		"(024)-123-4567":  "0241234567",
		"241234567":       "241234567",
		"not a phone":     "",
		"+233 (0)24 1234": "2330241234",
	}

	for in, exp := range tests {
		assert.Equal(t, exp, domain.FormatPhone(in), "input %q", in)
	}
}

func TestMapUpstreamStatus(t *testing.T) {
	tests := []struct {
		external  string
		expStatus domain.OrderStatus
		expOK     bool
	}{
		{"Successful", domain.OrderStatusCompleted, true},
		{"completed", domain.OrderStatusCompleted, true},
		{"DELIVERED", domain.OrderStatusCompleted, true},
		{"processing", domain.OrderStatusProcessing, true},
		{"PENDING", domain.OrderStatusProcessing, true},
		{"failed", domain.OrderStatusCancelled, true},
		{"Cancelled", domain.OrderStatusCancelled, true},
		{"unknown_value", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		t.Run(test.external, func(t *testing.T) {
			status, ok := domain.MapUpstreamStatus(test.external)
			assert.Equal(t, test.expOK, ok)
			assert.Equal(t, test.expStatus, status)
		})
	}
}

func TestOrderStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		from, to domain.OrderStatus
		exp      bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusProcessing, true},
		{domain.OrderStatusPending, domain.OrderStatusCompleted, true},
		{domain.OrderStatusProcessing, domain.OrderStatusCancelled, true},
		{domain.OrderStatusProcessing, domain.OrderStatusProcessing, false},
		{domain.OrderStatusProcessing, domain.OrderStatusPending, false},
		{domain.OrderStatusCompleted, domain.OrderStatusCancelled, false},
		{domain.OrderStatusCancelled, domain.OrderStatusProcessing, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, test.from.CanAdvanceTo(test.to), "%s -> %s", test.from, test.to)
	}
	assert.True(t, domain.OrderStatusCompleted.IsTerminal())
	assert.False(t, domain.OrderStatusPending.IsTerminal())
}

func TestProductVariant_Size(t *testing.T) {
	var nilVariant *domain.ProductVariant
	_, ok := nilVariant.Size()
	assert.False(t, ok)

	_, ok = (&domain.ProductVariant{}).Size()
	assert.False(t, ok)

	_, ok = (&domain.ProductVariant{Attributes: map[string]any{"size": "  "}}).Size()
	assert.False(t, ok)

	size, ok := (&domain.ProductVariant{Attributes: map[string]any{"size": "10GB"}}).Size()
	assert.True(t, ok)
	assert.Equal(t, "10GB", size)

	size, ok = (&domain.ProductVariant{Attributes: map[string]any{"size": float64(5)}}).Size()
	assert.True(t, ok)
	assert.Equal(t, "5", size)

	size, ok = (&domain.ProductVariant{Attributes: map[string]any{"size": 1.5}}).Size()
	assert.True(t, ok)
	assert.Equal(t, "1.5", size)

	for _, missing := range []any{false, float64(0), 0, "0", " 0 ", nil} {
		_, ok = (&domain.ProductVariant{Attributes: map[string]any{"size": missing}}).Size()
		assert.False(t, ok, "size %#v must be treated as missing", missing)
	}
}

func TestCompletionMessage(t *testing.T) {
	msg := domain.CompletionMessage(&domain.Order{ID: 42, Network: "MTN"})
	assert.Equal(t,
		"Your order #42 for MTN data has been completed successfully. Thank you for using Sharpdatagh!", msg)
}

func TestUpstreamError(t *testing.T) {
	var err error = &domain.UpstreamError{StatusCode: 422, Body: "bad size"}
	assert.True(t, errors.Is(err, domain.ErrUpstreamRejected))
	assert.Contains(t, err.Error(), "422")
}

func TestSyncReport_Add(t *testing.T) {
	r := domain.SyncReport{}
	r.Add(domain.SyncOutcomeUpdated)
	r.Add(domain.SyncOutcomeUpdated)
	r.Add(domain.SyncOutcomeFailed)
	r.Add(domain.SyncOutcomeRaced)
	r.Add(domain.SyncOutcomeUnknown)
	r.Add(domain.SyncOutcomeUnchanged)

	assert.Equal(t, domain.SyncReport{Updated: 2, Failed: 1, Raced: 1, Unknown: 1, Unchanged: 1}, r)
}
