package coupon

import (
	"errors"
	"strings"

	"freshcatch-be/internal/money"
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// whitelist maps a coupon code to its fixed discount in minor units.
// Codes are matched case-insensitively. There is no expiry, usage
// limit, or stacking.
var whitelist = map[string]money.Amount{
	"fresh50": 5000,
	"tide20":  2000,
}

// Discount returns the fixed discount for a coupon code, or
// ErrInvalidCoupon when the code is not on the whitelist.
func Discount(code string) (money.Amount, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if d, ok := whitelist[normalized]; ok {
		return d, nil
	}
	return 0, ErrInvalidCoupon
}
