package domain

import "strings"

// NetworkID identifies a mobile network on the fulfillment API.
type NetworkID int

const (
	NetworkMTN     NetworkID = 9
	NetworkTelecel NetworkID = 10
	NetworkIShare  NetworkID = 11
	NetworkBigTime NetworkID = 12
)

// checked in order, first match wins
var networkKeywords = []struct {
	keyword string
	id      NetworkID
}{
	{"mtn", NetworkMTN},
	{"telecel", NetworkTelecel},
	{"ishare", NetworkIShare},
	{"bigtime", NetworkBigTime},
}

// NetworkIDFromProduct resolves the upstream network of a product by its display name.
func NetworkIDFromProduct(productName string) (NetworkID, bool) {
	name := strings.ToLower(productName)
	for _, n := range networkKeywords {
		if strings.Contains(name, n.keyword) {
			return n.id, true
		}
	}
	return 0, false
}

// FormatPhone keeps only the digits of a phone number.
// Local 10-digit numbers ("0XXXXXXXXX") and anything else are passed through as digits;
// no international normalization is done.
func FormatPhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
