package product

import (
	"math/big"
	"time"
)

// StageLabel is the ledger's description of where a product currently sits
// in the pipeline. The ledger owns the enumeration; this side treats the
// value as opaque display text.
type StageLabel string

// Product is one tracked pharmaceutical batch as stored on the ledger.
// All fields are ledger-owned and read-only on this side.
type Product struct {
	ID          uint64
	Name        string
	Destination string
	Price       *big.Int // per quantity unit, in the currency's minor units
	Quantity    uint64
	ExpiresAt   int64 // unix seconds
	CreatedAt   int64 // unix seconds
}

// Expired reports whether the batch is past its expiration date.
func (p Product) Expired(now time.Time) bool {
	return p.ExpiresAt > 0 && now.Unix() >= p.ExpiresAt
}

// ExpiresTime returns the expiration date as a time.Time in UTC.
func (p Product) ExpiresTime() time.Time {
	return time.Unix(p.ExpiresAt, 0).UTC()
}

// CreatedTime returns the registration timestamp as a time.Time in UTC.
func (p Product) CreatedTime() time.Time {
	return time.Unix(p.CreatedAt, 0).UTC()
}
