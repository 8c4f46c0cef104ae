// Package register submits new products to the ledger. Registration is the
// only write that carries no payment; the caller funds gas alone.
package register

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Niki1320/supply-chain/internal/ledger"
	"github.com/Niki1320/supply-chain/internal/payment"
)

var ErrInvalidParams = errors.New("invalid product details")

//go:generate mockgen -source=service.go -destination=ledger_mock.go -package=register
type Ledger interface {
	ActiveAccount(ctx context.Context) (ledger.Address, error)
	EstimateAddProduct(ctx context.Context, name, destination string, price *big.Int, quantity uint64, expiresAt int64, from ledger.Address) (uint64, error)
	AddProduct(ctx context.Context, name, destination string, price *big.Int, quantity uint64, expiresAt int64, opts ledger.TxOpts) (string, error)
}

// Params describes the product to register. Price is a major-unit decimal
// string exactly as the user typed it.
type Params struct {
	Name        string
	Destination string
	Price       string
	Quantity    uint64
	ExpiresAt   time.Time
}

func (p Params) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidParams)
	}

	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidParams)
	}

	if p.Quantity == 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidParams)
	}

	if p.ExpiresAt.IsZero() {
		return fmt.Errorf("%w: expiry date is required", ErrInvalidParams)
	}

	return nil
}

type Receipt struct {
	AttemptID    uuid.UUID
	TxHash       string
	PriceMinor   *big.Int
	GasLimit     uint64
	GasEstimated bool
	SubmittedAt  time.Time
}

type Service struct {
	ledger      Ledger
	calc        payment.Calculator
	fallbackGas uint64
}

func NewService(l Ledger, calc payment.Calculator, fallbackGas uint64) *Service {
	return &Service{
		ledger:      l,
		calc:        calc,
		fallbackGas: fallbackGas,
	}
}

// Register validates the product details, scales the price into minor units
// and sends the registration transaction. Gas estimation failures fall back
// to the configured ceiling, same policy as stage transitions.
func (s *Service) Register(ctx context.Context, params Params) (*Receipt, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	priceMinor, err := s.calc.ScaleToMinorUnits(params.Price)
	if err != nil {
		return nil, err
	}

	from, err := s.ledger.ActiveAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("register product %q: %w", params.Name, err)
	}

	expiresAt := params.ExpiresAt.Unix()

	gas, estimated := s.gasCeiling(ctx, params, priceMinor, expiresAt, from)

	txHash, err := s.ledger.AddProduct(ctx, params.Name, params.Destination, priceMinor, params.Quantity, expiresAt, ledger.TxOpts{
		From:     from,
		GasLimit: gas,
	})
	if err != nil {
		return nil, fmt.Errorf("register product %q: %w", params.Name, err)
	}

	return &Receipt{
		AttemptID:    uuid.New(),
		TxHash:       txHash,
		PriceMinor:   priceMinor,
		GasLimit:     gas,
		GasEstimated: estimated,
		SubmittedAt:  time.Now(),
	}, nil
}

func (s *Service) gasCeiling(ctx context.Context, params Params, priceMinor *big.Int, expiresAt int64, from ledger.Address) (uint64, bool) {
	gas, err := s.ledger.EstimateAddProduct(ctx, params.Name, params.Destination, priceMinor, params.Quantity, expiresAt, from)
	if err != nil {
		slog.Warn("gas estimation failed, using fallback ceiling",
			"product", params.Name,
			"fallback_gas", s.fallbackGas,
			"error", err)

		return s.fallbackGas, false
	}

	return gas, true
}
