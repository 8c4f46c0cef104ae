package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/Niki1320/supply-chain/internal/catalog"
	"github.com/Niki1320/supply-chain/internal/register"
	"github.com/Niki1320/supply-chain/internal/transition"
)

// Monetary amounts are minor-unit integers rendered as decimal strings;
// they routinely exceed what a JSON number can hold losslessly.
type productResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	Price       string    `json:"price"`
	Quantity    uint64    `json:"quantity"`
	Stage       string    `json:"stage"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type catalogResponse struct {
	Products []productResponse `json:"products"`
	LoadedAt time.Time         `json:"loaded_at"`
}

func toProductResponse(e catalog.Entry) productResponse {
	price := "0"
	if e.Product.Price != nil {
		price = e.Product.Price.String()
	}

	return productResponse{
		ID:          e.Product.ID,
		Name:        e.Product.Name,
		Destination: e.Product.Destination,
		Price:       price,
		Quantity:    e.Product.Quantity,
		Stage:       string(e.Stage),
		ExpiresAt:   e.Product.ExpiresTime(),
		CreatedAt:   e.Product.CreatedTime(),
	}
}

func toCatalogResponse(snap *catalog.Snapshot) catalogResponse {
	products := make([]productResponse, len(snap.Items))
	for i, e := range snap.Items {
		products[i] = toProductResponse(e)
	}

	return catalogResponse{
		Products: products,
		LoadedAt: snap.LoadedAt,
	}
}

type transitionResponse struct {
	AttemptID    uuid.UUID `json:"attempt_id"`
	ProductID    uint64    `json:"product_id"`
	Operation    string    `json:"operation"`
	TxHash       string    `json:"tx_hash"`
	AmountPaid   string    `json:"amount_paid"`
	GasLimit     uint64    `json:"gas_limit"`
	GasEstimated bool      `json:"gas_estimated"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func toTransitionResponse(r *transition.Receipt) transitionResponse {
	return transitionResponse{
		AttemptID:    r.AttemptID,
		ProductID:    r.ProductID,
		Operation:    string(r.Operation),
		TxHash:       r.TxHash,
		AmountPaid:   r.AmountPaid.String(),
		GasLimit:     r.GasLimit,
		GasEstimated: r.GasEstimated,
		SubmittedAt:  r.SubmittedAt,
	}
}

type registerResponse struct {
	AttemptID    uuid.UUID `json:"attempt_id"`
	TxHash       string    `json:"tx_hash"`
	PriceMinor   string    `json:"price_minor"`
	GasLimit     uint64    `json:"gas_limit"`
	GasEstimated bool      `json:"gas_estimated"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func toRegisterResponse(r *register.Receipt) registerResponse {
	return registerResponse{
		AttemptID:    r.AttemptID,
		TxHash:       r.TxHash,
		PriceMinor:   r.PriceMinor.String(),
		GasLimit:     r.GasLimit,
		GasEstimated: r.GasEstimated,
		SubmittedAt:  r.SubmittedAt,
	}
}
