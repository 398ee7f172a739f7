// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"net/http"

	usecase "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/application/usecase"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
)

// CartHandler serves /carts/{userId}.
//
//	GET    /carts/{userId}         cart, or {userId, items: []}
//	POST   /carts/{userId}         {productId, quantity} merge (PUT is accepted too)
//	DELETE /carts/{userId}         clear
type CartHandler struct {
	uc  *usecase.CartUsecase
	log *logger.Logger
}

func NewCartHandler(uc *usecase.CartUsecase, log *logger.Logger) http.Handler {
	return &CartHandler{uc: uc, log: logger.OrNop(log).Named("cart_handler")}
}

type cartMutationRequest struct {
	ProductID *string         `json:"productId"`
	Quantity  *common.Decimal `json:"quantity"`
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path, "/carts")
	if len(parts) != 1 {
		if len(parts) == 0 {
			badRequest(w, "missing userId in path")
			return
		}
		notFound(w)
		return
	}
	userID := parts[0]

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, userID)
	case http.MethodPost, http.MethodPut:
		h.mutate(w, r, userID)
	case http.MethodDelete:
		h.clear(w, r, userID)
	default:
		methodNotAllowed(w, r)
	}
}

func (h *CartHandler) get(w http.ResponseWriter, r *http.Request, userID string) {
	c, err := h.uc.Get(r.Context(), userID)
	if err != nil {
		writeErr(w, h.log, "cart_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, userID string) {
	var req cartMutationRequest
	if err := readJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if req.ProductID == nil || req.Quantity == nil {
		badRequest(w, "fields 'productId' and 'quantity' are required")
		return
	}

	c, err := h.uc.ApplyMutation(r.Context(), userID, *req.ProductID, *req.Quantity)
	if err != nil {
		writeErr(w, h.log, "cart_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request, userID string) {
	if err := h.uc.Clear(r.Context(), userID); err != nil {
		writeErr(w, h.log, "cart_handler", err)
		return
	}
	writeMessage(w, http.StatusOK, "cart cleared")
}
