package ledger

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/Niki1320/supply-chain/internal/ethrpc"
)

// Address is a 20-byte EVM account address, normalized to 0x-prefixed
// lowercase hex.
type Address string

func (a Address) String() string { return string(a) }

// ParseAddress validates and normalizes an address string.
func ParseAddress(s string) (Address, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", fmt.Errorf("invalid address %q: missing 0x prefix", s)
	}

	raw, err := hex.DecodeString(s[2:])
	if err != nil || len(raw) != 20 {
		return "", fmt.Errorf("invalid address %q", s)
	}

	return Address("0x" + hex.EncodeToString(raw)), nil
}

// TxOpts carries the caller-controlled parameters of a write submission.
type TxOpts struct {
	From     Address
	Value    *big.Int // attached payment in minor units, nil for none
	GasLimit uint64
}

// Options configures Dial.
type Options struct {
	Endpoint  string
	Contracts map[string]string // decimal chain id -> contract address
	From      string            // optional fixed account, skips provider account lookup
	Timeout   time.Duration
}

// Gateway is the typed boundary to the supply-chain contract. It owns the
// JSON-RPC connection, the contract binding for the connected chain and the
// provider's account surface. Obtain one through Dial; there is no ambient
// fallback.
type Gateway struct {
	rpc      *ethrpc.Client
	chainID  string
	contract Address
	from     Address
}

// Dial connects to the provider, resolves the contract address configured
// for the reported chain id and verifies that code is actually deployed
// there. A missing mapping or empty code fails with ErrContractNotDeployed
// so the caller can surface the configuration mismatch instead of retrying.
func Dial(ctx context.Context, opts Options) (*Gateway, error) {
	if opts.Endpoint == "" {
		return nil, errors.New("ledger endpoint not configured")
	}

	rpc := ethrpc.NewClient(opts.Endpoint, opts.Timeout)

	var rawID string
	if err := rpc.Call(ctx, &rawID, "eth_chainId"); err != nil {
		return nil, netErr(err)
	}

	id, err := ethrpc.DecodeUint64(rawID)
	if err != nil {
		return nil, fmt.Errorf("reading chain id: %w", err)
	}

	chainID := strconv.FormatUint(id, 10)

	configured, ok := opts.Contracts[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: no contract address configured for chain %s", ErrContractNotDeployed, chainID)
	}

	contract, err := ParseAddress(configured)
	if err != nil {
		return nil, fmt.Errorf("contract address for chain %s: %w", chainID, err)
	}

	var rawCode string
	if err := rpc.Call(ctx, &rawCode, "eth_getCode", contract.String(), "latest"); err != nil {
		return nil, netErr(err)
	}

	code, err := ethrpc.DecodeBytes(rawCode)
	if err != nil {
		return nil, fmt.Errorf("reading contract code: %w", err)
	}

	if len(code) == 0 {
		return nil, fmt.Errorf("%w: no code at %s on chain %s", ErrContractNotDeployed, contract, chainID)
	}

	g := &Gateway{rpc: rpc, chainID: chainID, contract: contract}

	if opts.From != "" {
		from, err := ParseAddress(opts.From)
		if err != nil {
			return nil, fmt.Errorf("configured account: %w", err)
		}

		g.from = from
	}

	return g, nil
}

// ChainID returns the decimal chain id of the connected network.
func (g *Gateway) ChainID() string { return g.chainID }

// ContractAddress returns the bound contract address.
func (g *Gateway) ContractAddress() Address { return g.contract }

// Accounts lists the accounts the provider currently exposes.
func (g *Gateway) Accounts(ctx context.Context) ([]Address, error) {
	return g.accountCall(ctx, "eth_accounts")
}

// RequestAccounts asks the provider to expose accounts, which may prompt
// the user. Denial surfaces as ErrNoAccount.
func (g *Gateway) RequestAccounts(ctx context.Context) ([]Address, error) {
	accts, err := g.accountCall(ctx, "eth_requestAccounts")
	if err != nil && ethrpc.IsProviderError(err) {
		return nil, fmt.Errorf("%w: %w", ErrNoAccount, err)
	}

	return accts, err
}

// ActiveAccount resolves the account a submission should act as: the
// configured override if set, otherwise the provider's first unlocked
// account, prompting for one as a last resort.
func (g *Gateway) ActiveAccount(ctx context.Context) (Address, error) {
	if g.from != "" {
		return g.from, nil
	}

	accts, err := g.Accounts(ctx)
	if err != nil {
		return "", err
	}

	if len(accts) > 0 {
		return accts[0], nil
	}

	accts, err = g.RequestAccounts(ctx)
	if err != nil {
		return "", err
	}

	if len(accts) == 0 {
		return "", ErrNoAccount
	}

	return accts[0], nil
}

func (g *Gateway) accountCall(ctx context.Context, method string) ([]Address, error) {
	var raw []string
	if err := g.rpc.Call(ctx, &raw, method); err != nil {
		return nil, netErr(err)
	}

	accts := make([]Address, 0, len(raw))

	for _, s := range raw {
		a, err := ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}

		accts = append(accts, a)
	}

	return accts, nil
}
