package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Niki1320/supply-chain/internal/ethabi"
	"github.com/Niki1320/supply-chain/internal/ethrpc"
	"github.com/Niki1320/supply-chain/internal/product"
)

// Wire names of the four payable stage methods. The set is closed: the
// gateway refuses to submit anything that is not registered below.
const (
	MethodManufacture = "manufacture"
	MethodShip        = "ship"
	MethodDistribute  = "distribute"
	MethodWarehouse   = "warehouse"

	methodAddProduct = "addProduct"
)

// contractMethods is the full ABI surface this client speaks. The ledger
// contract itself is external; this table is the binding to it.
var contractMethods = map[string]ethabi.Method{
	"getProductCount": {
		Name:    "getProductCount",
		Outputs: []string{"uint256"},
	},
	"getProduct": {
		Name:   "getProduct",
		Inputs: []string{"uint256"},
		// id, name, destination, price, quantity, expiresAt, createdAt
		Outputs: []string{"uint256", "string", "string", "uint256", "uint256", "uint256", "uint256"},
	},
	"getStage": {
		Name:    "getStage",
		Inputs:  []string{"uint256"},
		Outputs: []string{"string"},
	},
	MethodManufacture: {Name: MethodManufacture, Inputs: []string{"uint256"}, Payable: true},
	MethodShip:        {Name: MethodShip, Inputs: []string{"uint256"}, Payable: true},
	MethodDistribute:  {Name: MethodDistribute, Inputs: []string{"uint256"}, Payable: true},
	MethodWarehouse:   {Name: MethodWarehouse, Inputs: []string{"uint256"}, Payable: true},
	methodAddProduct: {
		Name: methodAddProduct,
		// name, destination, price (minor units), quantity, expiresAt
		Inputs: []string{"string", "string", "uint256", "uint256", "uint256"},
	},
}

// callParams is the transaction/call object of the JSON-RPC API.
type callParams struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to"`
	Gas   string `json:"gas,omitempty"`
	Value string `json:"value,omitempty"`
	Data  string `json:"data,omitempty"`
}

// GetProductCount reads the total number of registered products. Ids are
// assigned densely, so the catalog is exactly 1..count.
func (g *Gateway) GetProductCount(ctx context.Context) (uint64, error) {
	vals, err := g.read(ctx, "getProductCount")
	if err != nil {
		return 0, err
	}

	n, ok := vals[0].(*big.Int)
	if !ok || !n.IsUint64() {
		return 0, fmt.Errorf("malformed product count")
	}

	return n.Uint64(), nil
}

// GetProduct reads one product record straight from the ledger.
func (g *Gateway) GetProduct(ctx context.Context, id uint64) (product.Product, error) {
	vals, err := g.read(ctx, "getProduct", id)
	if err != nil {
		return product.Product{}, err
	}

	return decodeProduct(vals)
}

// GetStage reads the ledger's current stage label for a product.
func (g *Gateway) GetStage(ctx context.Context, id uint64) (product.StageLabel, error) {
	vals, err := g.read(ctx, "getStage", id)
	if err != nil {
		return "", err
	}

	s, ok := vals[0].(string)
	if !ok {
		return "", fmt.Errorf("malformed stage label")
	}

	return product.StageLabel(s), nil
}

// EstimateTransition asks the provider for the gas cost of the given stage
// call with exactly the arguments and value that would be submitted.
func (g *Gateway) EstimateTransition(ctx context.Context, method string, id uint64, from Address, value *big.Int) (uint64, error) {
	m, err := stageMethod(method)
	if err != nil {
		return 0, err
	}

	return g.estimate(ctx, m, []any{id}, from, value)
}

// SubmitTransition sends the stage-transition transaction and returns the
// ledger's transaction hash. The provider signs; this side only names the
// account. There is no finality wait beyond the provider's acceptance.
func (g *Gateway) SubmitTransition(ctx context.Context, method string, id uint64, opts TxOpts) (string, error) {
	m, err := stageMethod(method)
	if err != nil {
		return "", err
	}

	return g.send(ctx, m, []any{id}, opts)
}

// EstimateAddProduct estimates gas for a product registration.
func (g *Gateway) EstimateAddProduct(ctx context.Context, name, destination string, price *big.Int, quantity uint64, expiresAt int64, from Address) (uint64, error) {
	return g.estimate(ctx, contractMethods[methodAddProduct],
		[]any{name, destination, price, quantity, expiresAt}, from, nil)
}

// AddProduct registers a new product on the ledger. Registration carries no
// payment, only gas.
func (g *Gateway) AddProduct(ctx context.Context, name, destination string, price *big.Int, quantity uint64, expiresAt int64, opts TxOpts) (string, error) {
	opts.Value = nil

	return g.send(ctx, contractMethods[methodAddProduct],
		[]any{name, destination, price, quantity, expiresAt}, opts)
}

func stageMethod(name string) (ethabi.Method, error) {
	m, ok := contractMethods[name]
	if !ok || !m.Payable {
		return ethabi.Method{}, fmt.Errorf("unknown stage method %q", name)
	}

	return m, nil
}

func (g *Gateway) read(ctx context.Context, method string, args ...any) ([]any, error) {
	m, ok := contractMethods[method]
	if !ok {
		return nil, fmt.Errorf("unknown contract method %q", method)
	}

	data, err := m.Pack(args...)
	if err != nil {
		return nil, err
	}

	var out string

	params := callParams{To: g.contract.String(), Data: ethrpc.EncodeBytes(data)}
	if err := g.rpc.Call(ctx, &out, "eth_call", params, "latest"); err != nil {
		return nil, netErr(err)
	}

	raw, err := ethrpc.DecodeBytes(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return m.Unpack(raw)
}

func (g *Gateway) estimate(ctx context.Context, m ethabi.Method, args []any, from Address, value *big.Int) (uint64, error) {
	data, err := m.Pack(args...)
	if err != nil {
		return 0, err
	}

	params := callParams{
		From: from.String(),
		To:   g.contract.String(),
		Data: ethrpc.EncodeBytes(data),
	}
	if value != nil && value.Sign() > 0 {
		params.Value = ethrpc.EncodeBig(value)
	}

	var out string
	if err := g.rpc.Call(ctx, &out, "eth_estimateGas", params); err != nil {
		return 0, netErr(err)
	}

	gas, err := ethrpc.DecodeUint64(out)
	if err != nil {
		return 0, fmt.Errorf("%s estimate: %w", m.Name, err)
	}

	return gas, nil
}

func (g *Gateway) send(ctx context.Context, m ethabi.Method, args []any, opts TxOpts) (string, error) {
	if opts.From == "" {
		return "", ErrNoAccount
	}

	data, err := m.Pack(args...)
	if err != nil {
		return "", err
	}

	params := callParams{
		From: opts.From.String(),
		To:   g.contract.String(),
		Gas:  ethrpc.EncodeUint64(opts.GasLimit),
		Data: ethrpc.EncodeBytes(data),
	}

	if opts.Value != nil && opts.Value.Sign() > 0 {
		if !m.Payable {
			return "", fmt.Errorf("method %s does not accept a payment", m.Name)
		}

		params.Value = ethrpc.EncodeBig(opts.Value)
	}

	var txHash string
	if err := g.rpc.Call(ctx, &txHash, "eth_sendTransaction", params); err != nil {
		if ethrpc.IsProviderError(err) {
			return "", fmt.Errorf("%w: %w", ErrLedgerRejected, err)
		}

		return "", fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	}

	return txHash, nil
}

func decodeProduct(vals []any) (product.Product, error) {
	if len(vals) != 7 {
		return product.Product{}, fmt.Errorf("malformed product record")
	}

	id, ok0 := vals[0].(*big.Int)
	name, ok1 := vals[1].(string)
	destination, ok2 := vals[2].(string)
	price, ok3 := vals[3].(*big.Int)
	quantity, ok4 := vals[4].(*big.Int)
	expiresAt, ok5 := vals[5].(*big.Int)
	createdAt, ok6 := vals[6].(*big.Int)

	if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return product.Product{}, fmt.Errorf("malformed product record")
	}

	if !id.IsUint64() || !quantity.IsUint64() || !expiresAt.IsInt64() || !createdAt.IsInt64() {
		return product.Product{}, fmt.Errorf("product record out of range")
	}

	return product.Product{
		ID:          id.Uint64(),
		Name:        name,
		Destination: destination,
		Price:       price,
		Quantity:    quantity.Uint64(),
		ExpiresAt:   expiresAt.Int64(),
		CreatedAt:   createdAt.Int64(),
	}, nil
}
