package transition

import (
	"fmt"

	"github.com/Niki1320/supply-chain/internal/ledger"
)

// Op names one of the four pipeline stage transitions a user can request.
// The set is closed; the ledger contract is the only authority on whether a
// given transition is legal for a product's current stage.
type Op string

const (
	OpManufacture Op = "manufacture"
	OpShip        Op = "ship"
	OpDistribute  Op = "distribute"
	OpWarehouse   Op = "warehouse"
)

// Ops lists the operations in pipeline order, for UIs that enumerate them.
func Ops() []Op {
	return []Op{OpManufacture, OpShip, OpDistribute, OpWarehouse}
}

func (o Op) ledgerMethod() (string, error) {
	switch o {
	case OpManufacture:
		return ledger.MethodManufacture, nil
	case OpShip:
		return ledger.MethodShip, nil
	case OpDistribute:
		return ledger.MethodDistribute, nil
	case OpWarehouse:
		return ledger.MethodWarehouse, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, string(o))
	}
}
