package catalog

import (
	"context"
	"fmt"

	"github.com/Niki1320/supply-chain/internal/product"
)

//go:generate mockgen -source=service.go -destination=reader_mock.go -package=catalog
type Reader interface {
	GetProductCount(ctx context.Context) (uint64, error)
	GetProduct(ctx context.Context, id uint64) (product.Product, error)
	GetStage(ctx context.Context, id uint64) (product.StageLabel, error)
}

type Service struct {
	reader Reader
}

func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

// LoadAll reads the full catalog from the ledger: the product counter first,
// then each record and its stage label for id 1..count, one id at a time in
// increasing order. The result always replaces the previous snapshot whole;
// partial reads are never merged into an older one.
func (s *Service) LoadAll(ctx context.Context) (*Snapshot, error) {
	count, err := s.reader.GetProductCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("read product count: %w", err)
	}

	items := make([]Entry, 0, count)

	for id := uint64(1); id <= count; id++ {
		p, err := s.reader.GetProduct(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("read product %d: %w", id, err)
		}

		stage, err := s.reader.GetStage(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("read stage of product %d: %w", id, err)
		}

		items = append(items, Entry{Product: p, Stage: stage})
	}

	return NewSnapshot(items), nil
}
