package transition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Niki1320/supply-chain/internal/ledger"
	"github.com/Niki1320/supply-chain/internal/payment"
	"github.com/Niki1320/supply-chain/internal/product"
)

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrAlreadyInFlight  = errors.New("transition already in flight")
)

//go:generate mockgen -source=service.go -destination=ledger_mock.go -package=transition
type Ledger interface {
	GetProduct(ctx context.Context, id uint64) (product.Product, error)
	ActiveAccount(ctx context.Context) (ledger.Address, error)
	EstimateTransition(ctx context.Context, method string, id uint64, from ledger.Address, value *big.Int) (uint64, error)
	SubmitTransition(ctx context.Context, method string, id uint64, opts ledger.TxOpts) (string, error)
}

// Request is a user's ask to move one product to the next pipeline stage.
// ProductID arrives as raw input and is validated here, not by the caller.
type Request struct {
	ProductID string
	Operation Op
}

// Receipt records a transition the ledger accepted. GasEstimated is false
// when the provider's estimate failed and the fallback ceiling was used.
type Receipt struct {
	AttemptID    uuid.UUID
	ProductID    uint64
	Operation    Op
	TxHash       string
	AmountPaid   *big.Int
	GasLimit     uint64
	GasEstimated bool
	SubmittedAt  time.Time
}

type Service struct {
	ledger      Ledger
	calc        payment.Calculator
	fallbackGas uint64

	mu       sync.Mutex
	inFlight map[uint64]struct{}
}

func NewService(l Ledger, calc payment.Calculator, fallbackGas uint64) *Service {
	return &Service{
		ledger:      l,
		calc:        calc,
		fallbackGas: fallbackGas,
		inFlight:    make(map[uint64]struct{}),
	}
}

// Submit runs one transition attempt end to end: validate the request,
// price from a fresh ledger read, resolve the acting account, estimate gas,
// send. Single attempt per call; nothing is retried except the silent
// estimation fallback. Every failure wraps a sentinel and names the
// attempted operation. Stage ordering is not checked here: the ledger
// contract is the sole authority on whether the transition is legal.
func (s *Service) Submit(ctx context.Context, req Request) (*Receipt, error) {
	id, err := parseProductID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Operation, err)
	}

	method, err := req.Operation.ledgerMethod()
	if err != nil {
		return nil, err
	}

	if !s.acquire(id) {
		return nil, fmt.Errorf("%s product %d: %w", req.Operation, id, ErrAlreadyInFlight)
	}
	defer s.release(id)

	receipt, err := s.submit(ctx, id, method, req.Operation)
	if err != nil {
		return nil, fmt.Errorf("%s product %d: %w", req.Operation, id, err)
	}

	return receipt, nil
}

func (s *Service) submit(ctx context.Context, id uint64, method string, op Op) (*Receipt, error) {
	// Price and quantity are re-read from the ledger at submission time so
	// the attached payment reflects current state, not a cached snapshot.
	p, err := s.ledger.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	amount, err := s.calc.PaymentFor(p.Price, p.Quantity)
	if err != nil {
		return nil, err
	}

	from, err := s.ledger.ActiveAccount(ctx)
	if err != nil {
		return nil, err
	}

	gas, estimated := s.gasCeiling(ctx, method, id, from, amount, op)

	txHash, err := s.ledger.SubmitTransition(ctx, method, id, ledger.TxOpts{
		From:     from,
		Value:    amount,
		GasLimit: gas,
	})
	if err != nil {
		return nil, err
	}

	return &Receipt{
		AttemptID:    uuid.New(),
		ProductID:    id,
		Operation:    op,
		TxHash:       txHash,
		AmountPaid:   amount,
		GasLimit:     gas,
		GasEstimated: estimated,
		SubmittedAt:  time.Now(),
	}, nil
}

// gasCeiling estimates gas for the exact call about to be sent. An
// estimation failure never blocks the attempt: the configured fallback
// ceiling is used instead and the submission proceeds.
func (s *Service) gasCeiling(ctx context.Context, method string, id uint64, from ledger.Address, value *big.Int, op Op) (uint64, bool) {
	gas, err := s.ledger.EstimateTransition(ctx, method, id, from, value)
	if err != nil {
		slog.Warn("gas estimation failed, using fallback ceiling",
			"operation", string(op),
			"product_id", id,
			"fallback_gas", s.fallbackGas,
			"error", err)

		return s.fallbackGas, false
	}

	return gas, true
}

func (s *Service) acquire(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[id]; busy {
		return false
	}

	s.inFlight[id] = struct{}{}

	return true
}

func (s *Service) release(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, id)
}

func parseProductID(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProductID, raw)
	}

	return id, nil
}
