// internal/adapters/in/http/handlers/checkout_handler.go
package handlers

import (
	"net/http"

	usecase "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/application/usecase"
	archivedom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/archive"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
)

// CheckoutHandler serves /checkout.
//
//	POST /checkout            archive a finalized order
//	POST /checkout/{orderId}  archive a stored order by id
//	GET  /checkout/{orderId}  read an archived order
type CheckoutHandler struct {
	uc  *usecase.CheckoutUsecase
	log *logger.Logger
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase, log *logger.Logger) http.Handler {
	return &CheckoutHandler{uc: uc, log: logger.OrNop(log).Named("checkout_handler")}
}

type checkoutRequest struct {
	OrderID    *string              `json:"orderId"`
	UserID     *string              `json:"userId"`
	Items      *[]orderdom.LineItem `json:"items"`
	TotalPrice *common.Decimal      `json:"totalPrice"`
	CreatedAt  *string              `json:"createdAt"`

	CustomerName    string `json:"customerName"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

type checkoutResponse struct {
	Message         string `json:"message"`
	ArchivedOrderID string `json:"archivedOrderId"`
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path, "/checkout")

	switch {
	case len(parts) == 0 && r.Method == http.MethodPost:
		h.archive(w, r)
	case len(parts) == 1 && r.Method == http.MethodPost:
		h.archiveStored(w, r, parts[0])
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.get(w, r, parts[0])
	case len(parts) <= 1:
		methodNotAllowed(w, r)
	default:
		notFound(w)
	}
}

func (h *CheckoutHandler) archive(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := readJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if req.OrderID == nil || req.UserID == nil || req.Items == nil || req.TotalPrice == nil || req.CreatedAt == nil {
		badRequest(w, "fields 'orderId', 'userId', 'items', 'totalPrice' and 'createdAt' are required")
		return
	}

	id, err := h.uc.Archive(r.Context(), archivedom.ArchivedOrder{
		OrderID:         *req.OrderID,
		UserID:          *req.UserID,
		Items:           *req.Items,
		TotalPrice:      *req.TotalPrice,
		CreatedAt:       *req.CreatedAt,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		writeErr(w, h.log, "checkout_handler", err)
		return
	}
	h.log.Info("[checkout_handler] archived", "orderId", id)
	writeJSON(w, http.StatusCreated, checkoutResponse{
		Message:         "checkout archived",
		ArchivedOrderID: id,
	})
}

func (h *CheckoutHandler) archiveStored(w http.ResponseWriter, r *http.Request, orderID string) {
	id, err := h.uc.ArchiveOrder(r.Context(), orderID)
	if err != nil {
		writeErr(w, h.log, "checkout_handler", err)
		return
	}
	h.log.Info("[checkout_handler] archived stored order", "orderId", id)
	writeJSON(w, http.StatusCreated, checkoutResponse{
		Message:         "checkout archived",
		ArchivedOrderID: id,
	})
}

func (h *CheckoutHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	a, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeErr(w, h.log, "checkout_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
