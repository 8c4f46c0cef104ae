package catalog

import (
	"time"

	"github.com/Niki1320/supply-chain/internal/product"
)

// Entry pairs a product record with the stage label the ledger reported for
// it at load time.
type Entry struct {
	Product product.Product
	Stage   product.StageLabel
}

// Snapshot is one consistent read of the whole catalog, ordered by ascending
// product id. A snapshot is immutable once built; reloads replace it whole.
type Snapshot struct {
	Items    []Entry
	LoadedAt time.Time

	index map[uint64]int
}

func NewSnapshot(items []Entry) *Snapshot {
	index := make(map[uint64]int, len(items))
	for i, it := range items {
		index[it.Product.ID] = i
	}

	return &Snapshot{
		Items:    items,
		LoadedAt: time.Now(),
		index:    index,
	}
}

func (s *Snapshot) Len() int {
	return len(s.Items)
}

// Get returns the entry for a product id, if the snapshot holds it.
func (s *Snapshot) Get(id uint64) (Entry, bool) {
	i, ok := s.index[id]
	if !ok {
		return Entry{}, false
	}

	return s.Items[i], true
}
