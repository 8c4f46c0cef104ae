package view

import (
	"context"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger writes wait on the provider, which may in turn wait on a user
// confirming in their wallet.
const ledgerTimeout = 2 * time.Minute

// FormatAmount renders a minor-unit amount in major units, e.g.
// 1500000000000000000 at 18 decimals -> "1.5".
func FormatAmount(minor *big.Int, decimals int32) string {
	if minor == nil {
		return "0"
	}

	return decimal.NewFromBigInt(minor, -decimals).String()
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// LedgerCtx returns a context with a standard timeout for ledger operations.
func LedgerCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ledgerTimeout)
}
