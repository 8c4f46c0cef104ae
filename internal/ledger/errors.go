package ledger

import (
	"errors"
	"fmt"

	"github.com/Niki1320/supply-chain/internal/ethrpc"
)

var (
	// ErrNetworkUnavailable marks transport-level failures: the provider
	// endpoint never produced an answer.
	ErrNetworkUnavailable = errors.New("ledger unreachable")

	// ErrContractNotDeployed means the connected chain has no supply-chain
	// contract: either no address is configured for the chain id or the
	// configured address holds no code. A configuration problem, not a
	// transient one.
	ErrContractNotDeployed = errors.New("supply-chain contract not deployed on this network")

	// ErrLedgerRejected means the provider accepted the request and the
	// ledger said no (reverted or denied the transaction).
	ErrLedgerRejected = errors.New("ledger rejected the call")

	// ErrNoAccount means the provider holds no usable account, or the user
	// denied the account request.
	ErrNoAccount = errors.New("no ledger account available")
)

// netErr folds transport failures into ErrNetworkUnavailable while letting
// provider-level errors through untouched for the caller to classify.
func netErr(err error) error {
	if ethrpc.IsProviderError(err) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
}
