package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// NewOrderID builds an order identifier such as ORD-20260831-154501-0829.
// The second-resolution timestamp plus a 4-digit cryptographic random
// suffix is collision-proof at chat-message rates.
func NewOrderID(now time.Time) string {
	datePart := now.UTC().Format("20060102-150405")

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("ORD-%s-%04d", datePart, n.Int64())
}
