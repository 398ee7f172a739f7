// internal/adapters/in/http/handlers/order_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	usecase "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/application/usecase"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
)

// OrderHandler serves /orders.
//
//	POST      /orders                       create
//	GET       /orders?status=PAID&limit=N   list (status filter optional)
//	GET       /orders/{orderId}             get (takes precedence over ?status)
//	PUT|PATCH /orders/{orderId}             {status}
type OrderHandler struct {
	uc  *usecase.OrderUsecase
	log *logger.Logger
}

func NewOrderHandler(uc *usecase.OrderUsecase, log *logger.Logger) http.Handler {
	return &OrderHandler{uc: uc, log: logger.OrNop(log).Named("order_handler")}
}

type lineItemRequest struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"imageUrl"`
	Price     *common.Decimal `json:"price"`
	Quantity  *common.Decimal `json:"quantity"`
}

// createOrderRequest accepts both the current customer keys and the legacy
// Indonesian ones (nama, alamat, metodePembayaran). Current keys win.
type createOrderRequest struct {
	UserID *string            `json:"userId"`
	Items  *[]lineItemRequest `json:"items"`

	CustomerName    string `json:"customerName"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`

	Nama             string `json:"nama"`
	Alamat           string `json:"alamat"`
	MetodePembayaran string `json:"metodePembayaran"`
}

func (req createOrderRequest) customer() orderdom.CustomerInfo {
	return orderdom.CustomerInfo{
		CustomerName:    firstNonBlank(req.CustomerName, req.Nama),
		ShippingAddress: firstNonBlank(req.ShippingAddress, req.Alamat),
		PaymentMethod:   firstNonBlank(req.PaymentMethod, req.MetodePembayaran),
	}
}

type statusRequest struct {
	Status *string `json:"status"`
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path, "/orders")

	switch {
	case len(parts) == 0 && r.Method == http.MethodPost:
		h.create(w, r)
	case len(parts) == 0 && r.Method == http.MethodGet:
		h.list(w, r)
	case len(parts) == 0:
		methodNotAllowed(w, r)

	case len(parts) == 1 && r.Method == http.MethodGet:
		h.get(w, r, parts[0])
	case len(parts) == 1 && (r.Method == http.MethodPut || r.Method == http.MethodPatch):
		h.setStatus(w, r, parts[0])
	case len(parts) == 1:
		methodNotAllowed(w, r)

	default:
		notFound(w)
	}
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := readJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if req.UserID == nil || req.Items == nil {
		badRequest(w, "fields 'userId' and 'items' are required")
		return
	}

	items := make([]orderdom.LineItem, 0, len(*req.Items))
	for i, it := range *req.Items {
		if it.Price == nil || it.Quantity == nil {
			badRequest(w, "items["+strconv.Itoa(i)+"]: fields 'price' and 'quantity' are required")
			return
		}
		items = append(items, orderdom.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			ImageURL:  it.ImageURL,
			Price:     *it.Price,
			Quantity:  *it.Quantity,
		})
	}

	o, err := h.uc.Create(r.Context(), usecase.CreateOrderInput{
		UserID:   *req.UserID,
		Items:    items,
		Customer: req.customer(),
	})
	if err != nil {
		writeErr(w, h.log, "order_handler", err)
		return
	}
	h.log.Info("[order_handler] create ok", "orderId", o.OrderID, "userId", o.UserID, "totalPrice", o.TotalPrice.WireString())
	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := parseIntDefault(q.Get("limit"), 0)
	if err != nil {
		badRequest(w, "limit "+err.Error())
		return
	}
	in := usecase.ListOrdersInput{Limit: limit}
	if s := q.Get("status"); s != "" {
		in.Status = &s
	}

	orders, err := h.uc.List(r.Context(), in)
	if err != nil {
		writeErr(w, h.log, "order_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	o, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeErr(w, h.log, "order_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) setStatus(w http.ResponseWriter, r *http.Request, id string) {
	var req statusRequest
	if err := readJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if req.Status == nil {
		badRequest(w, "field 'status' is required")
		return
	}

	o, err := h.uc.SetStatus(r.Context(), id, *req.Status)
	if err != nil {
		writeErr(w, h.log, "order_handler", err)
		return
	}
	h.log.Info("[order_handler] status updated", "orderId", o.OrderID, "status", string(o.Status))
	writeJSON(w, http.StatusOK, o)
}

func firstNonBlank(vs ...string) string {
	for _, v := range vs {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
