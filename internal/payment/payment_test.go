package payment_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Niki1320/supply-chain/internal/payment"
)

func TestCalculator_ScaleToMinorUnits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		decimals  int32
		major     string
		expected  string
		expectErr bool
	}{
		{
			name:     "whole amount",
			decimals: 18,
			major:    "2",
			expected: "2000000000000000000",
		},
		{
			name:     "fractional amount",
			decimals: 18,
			major:    "1.5",
			expected: "1500000000000000000",
		},
		{
			name:     "smallest representable unit",
			decimals: 18,
			major:    "0.000000000000000001",
			expected: "1",
		},
		{
			name:     "zero",
			decimals: 18,
			major:    "0",
			expected: "0",
		},
		{
			name:     "two decimal currency",
			decimals: 2,
			major:    "1.23",
			expected: "123",
		},
		{
			name:     "surrounding whitespace",
			decimals: 18,
			major:    "  1.5  ",
			expected: "1500000000000000000",
		},
		{
			name:      "sub minor precision",
			decimals:  2,
			major:     "1.234",
			expectErr: true,
		},
		{
			name:      "negative",
			decimals:  18,
			major:     "-1",
			expectErr: true,
		},
		{
			name:      "empty",
			decimals:  18,
			major:     "",
			expectErr: true,
		},
		{
			name:      "not a number",
			decimals:  18,
			major:     "abc",
			expectErr: true,
		},
		{
			name:      "comma separator",
			decimals:  18,
			major:     "1,5",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			calc := payment.NewCalculator(tc.decimals)

			got, err := calc.ScaleToMinorUnits(tc.major)
			if tc.expectErr {
				require.ErrorIs(t, err, payment.ErrInvalidPrice)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got.String())
		})
	}
}

func TestCalculator_ComputePayment(t *testing.T) {
	t.Parallel()

	calc := payment.NewCalculator(18)

	got, err := calc.ComputePayment("1.5", 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000000000", got.String())

	_, err = calc.ComputePayment("oops", 1)
	require.ErrorIs(t, err, payment.ErrInvalidPrice)
}

func TestCalculator_PaymentFor(t *testing.T) {
	t.Parallel()

	calc := payment.NewCalculator(18)

	unitPrice, ok := new(big.Int).SetString("2000000000000000000", 10)
	require.True(t, ok)

	got, err := calc.PaymentFor(unitPrice, 5)
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000000", got.String())

	got, err = calc.PaymentFor(big.NewInt(100), 0)
	require.NoError(t, err)
	assert.Equal(t, "0", got.String())

	_, err = calc.PaymentFor(nil, 5)
	require.ErrorIs(t, err, payment.ErrInvalidPrice)

	_, err = calc.PaymentFor(big.NewInt(-1), 5)
	require.ErrorIs(t, err, payment.ErrInvalidPrice)
}
