// Package payment converts human-scale decimal prices into the ledger's
// minor-unit integer amounts and computes the value attached to paid
// transitions. All arithmetic is exact; floats are never involved.
package payment

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidPrice marks a price that is not a well-formed non-negative
// decimal, or that carries more precision than the ledger currency holds.
var ErrInvalidPrice = errors.New("invalid price")

// Calculator scales prices by the ledger currency's fixed exponent,
// e.g. 18 for an 18-decimal token.
type Calculator struct {
	decimals int32
}

func NewCalculator(decimals int32) Calculator {
	return Calculator{decimals: decimals}
}

// ScaleToMinorUnits converts a major-unit decimal string ("1.5") into the
// equivalent minor-unit integer. Precision finer than the currency's
// exponent is rejected rather than rounded.
func (c Calculator) ScaleToMinorUnits(major string) (*big.Int, error) {
	major = strings.TrimSpace(major)
	if major == "" {
		return nil, fmt.Errorf("%w: empty amount", ErrInvalidPrice)
	}

	d, err := decimal.NewFromString(major)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrice, err)
	}

	if d.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative amount %s", ErrInvalidPrice, major)
	}

	scaled := d.Shift(c.decimals)
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("%w: %s exceeds %d decimal places", ErrInvalidPrice, major, c.decimals)
	}

	return scaled.BigInt(), nil
}

// ComputePayment converts a major-unit price and multiplies it by quantity.
func (c Calculator) ComputePayment(major string, quantity uint64) (*big.Int, error) {
	minor, err := c.ScaleToMinorUnits(major)
	if err != nil {
		return nil, err
	}

	return c.PaymentFor(minor, quantity)
}

// PaymentFor multiplies a minor-unit price by quantity. This is the form the
// transition path uses: it re-reads price and quantity from the ledger at
// submission time and must not round-trip them through a decimal string.
func (c Calculator) PaymentFor(unitPriceMinor *big.Int, quantity uint64) (*big.Int, error) {
	if unitPriceMinor == nil || unitPriceMinor.Sign() < 0 {
		return nil, fmt.Errorf("%w: missing or negative unit price", ErrInvalidPrice)
	}

	return new(big.Int).Mul(unitPriceMinor, new(big.Int).SetUint64(quantity)), nil
}
