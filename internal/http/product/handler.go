package product

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Niki1320/supply-chain/internal/catalog"
	"github.com/Niki1320/supply-chain/internal/ledger"
	"github.com/Niki1320/supply-chain/internal/payment"
	"github.com/Niki1320/supply-chain/internal/register"
	"github.com/Niki1320/supply-chain/internal/transition"
)

type Handler struct {
	loader      *catalog.Service
	reader      catalog.Reader
	transitions *transition.Service
	registrar   *register.Service
}

func NewHandler(loader *catalog.Service, reader catalog.Reader, transitions *transition.Service, registrar *register.Service) *Handler {
	return &Handler{
		loader:      loader,
		reader:      reader,
		transitions: transitions,
		registrar:   registrar,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Post("/{id}/transitions", h.transition)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	snap, err := h.loader.LoadAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCatalogResponse(snap)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	// Ids are dense, so the counter bounds the catalog.
	count, err := h.reader.GetProductCount(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	if id > count {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	p, err := h.reader.GetProduct(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	stage, err := h.reader.GetStage(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toProductResponse(catalog.Entry{Product: p, Stage: stage})); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createProductRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Price       string `json:"price"`
	Quantity    uint64 `json:"quantity"`
	ExpiresAt   string `json:"expires_at"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var expiresAt time.Time

	if req.ExpiresAt != "" {
		var err error

		expiresAt, err = time.Parse(time.DateOnly, req.ExpiresAt)
		if err != nil {
			http.Error(w, "invalid expires_at, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	receipt, err := h.registrar.Register(r.Context(), register.Params{
		Name:        req.Name,
		Destination: req.Destination,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	if err := json.NewEncoder(w).Encode(toRegisterResponse(receipt)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type transitionRequest struct {
	Operation string `json:"operation"`
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := h.transitions.Submit(r.Context(), transition.Request{
		ProductID: chi.URLParam(r, "id"),
		Operation: transition.Op(req.Operation),
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	if err := json.NewEncoder(w).Encode(toTransitionResponse(receipt)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// statusFor maps the service error taxonomy onto HTTP statuses: bad input is
// the client's fault, an in-flight duplicate is a conflict, a ledger
// rejection is an upstream refusal, and an unreachable provider or missing
// account means the bridge is not ready to serve writes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, transition.ErrInvalidProductID),
		errors.Is(err, transition.ErrUnknownOperation),
		errors.Is(err, register.ErrInvalidParams),
		errors.Is(err, payment.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, transition.ErrAlreadyInFlight):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrLedgerRejected),
		errors.Is(err, ledger.ErrContractNotDeployed):
		return http.StatusBadGateway
	case errors.Is(err, ledger.ErrNetworkUnavailable),
		errors.Is(err, ledger.ErrNoAccount):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
