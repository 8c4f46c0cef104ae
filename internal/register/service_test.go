package register_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Niki1320/supply-chain/internal/ledger"
	"github.com/Niki1320/supply-chain/internal/payment"
	"github.com/Niki1320/supply-chain/internal/register"
)

const fallbackGas = uint64(300_000)

func validParams() register.Params {
	return register.Params{
		Name:        "Ibuprofen 400mg",
		Destination: "Braga",
		Price:       "1.5",
		Quantity:    200,
		ExpiresAt:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params := validParams()
	expiresAt := params.ExpiresAt.Unix()

	m := register.NewMockLedger(ctrl)
	m.EXPECT().ActiveAccount(gomock.Any()).Return(ledger.Address("0xabc"), nil)
	m.EXPECT().EstimateAddProduct(gomock.Any(), params.Name, params.Destination, gomock.Any(), uint64(200), expiresAt, ledger.Address("0xabc")).
		DoAndReturn(func(_ context.Context, _, _ string, price *big.Int, _ uint64, _ int64, _ ledger.Address) (uint64, error) {
			assert.Equal(t, "1500000000000000000", price.String())
			return 120_000, nil
		})

	var sent ledger.TxOpts

	m.EXPECT().AddProduct(gomock.Any(), params.Name, params.Destination, gomock.Any(), uint64(200), expiresAt, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ *big.Int, _ uint64, _ int64, opts ledger.TxOpts) (string, error) {
			sent = opts
			return "0xadded", nil
		})

	svc := register.NewService(m, payment.NewCalculator(18), fallbackGas)

	receipt, err := svc.Register(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, "0xadded", receipt.TxHash)
	assert.Equal(t, "1500000000000000000", receipt.PriceMinor.String())
	assert.Equal(t, uint64(120_000), receipt.GasLimit)
	assert.True(t, receipt.GasEstimated)

	// Registration carries no payment.
	assert.Nil(t, sent.Value)
	assert.Equal(t, ledger.Address("0xabc"), sent.From)
}

func TestService_Register_Validation(t *testing.T) {
	type testCase struct {
		name    string
		mutate  func(p *register.Params)
		wantErr error
	}

	tests := []testCase{
		{
			name:    "EmptyName",
			mutate:  func(p *register.Params) { p.Name = "  " },
			wantErr: register.ErrInvalidParams,
		},
		{
			name:    "EmptyDestination",
			mutate:  func(p *register.Params) { p.Destination = "" },
			wantErr: register.ErrInvalidParams,
		},
		{
			name:    "ZeroQuantity",
			mutate:  func(p *register.Params) { p.Quantity = 0 },
			wantErr: register.ErrInvalidParams,
		},
		{
			name:    "MissingExpiry",
			mutate:  func(p *register.Params) { p.ExpiresAt = time.Time{} },
			wantErr: register.ErrInvalidParams,
		},
		{
			name:    "UnparsablePrice",
			mutate:  func(p *register.Params) { p.Price = "cheap" },
			wantErr: payment.ErrInvalidPrice,
		},
		{
			name:    "NegativePrice",
			mutate:  func(p *register.Params) { p.Price = "-2" },
			wantErr: payment.ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			params := validParams()
			tt.mutate(&params)

			svc := register.NewService(register.NewMockLedger(ctrl), payment.NewCalculator(18), fallbackGas)

			got, err := svc.Register(context.Background(), params)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestService_Register_EstimationFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := register.NewMockLedger(ctrl)
	m.EXPECT().ActiveAccount(gomock.Any()).Return(ledger.Address("0xabc"), nil)
	m.EXPECT().EstimateAddProduct(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uint64(0), errors.New("provider error"))

	var sent ledger.TxOpts

	m.EXPECT().AddProduct(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ *big.Int, _ uint64, _ int64, opts ledger.TxOpts) (string, error) {
			sent = opts
			return "0xadded", nil
		})

	svc := register.NewService(m, payment.NewCalculator(18), fallbackGas)

	receipt, err := svc.Register(context.Background(), validParams())
	require.NoError(t, err)

	assert.Equal(t, fallbackGas, sent.GasLimit)
	assert.False(t, receipt.GasEstimated)
}

func TestService_Register_LedgerRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := register.NewMockLedger(ctrl)
	m.EXPECT().ActiveAccount(gomock.Any()).Return(ledger.Address("0xabc"), nil)
	m.EXPECT().EstimateAddProduct(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uint64(120_000), nil)
	m.EXPECT().AddProduct(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", ledger.ErrLedgerRejected)

	svc := register.NewService(m, payment.NewCalculator(18), fallbackGas)

	_, err := svc.Register(context.Background(), validParams())

	require.ErrorIs(t, err, ledger.ErrLedgerRejected)
	assert.Contains(t, err.Error(), "Ibuprofen 400mg")
}
