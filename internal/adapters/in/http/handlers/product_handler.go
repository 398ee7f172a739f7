// internal/adapters/in/http/handlers/product_handler.go
package handlers

import (
	"net/http"

	usecase "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/application/usecase"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
)

// ProductHandler serves /products.
//
//	GET    /products
//	POST   /products
//	GET    /products/{productId}
//	PUT    /products/{productId}
//	DELETE /products/{productId}
//	POST   /products/{productId}/image-upload-url
type ProductHandler struct {
	uc  *usecase.ProductUsecase
	log *logger.Logger
}

func NewProductHandler(uc *usecase.ProductUsecase, log *logger.Logger) http.Handler {
	return &ProductHandler{uc: uc, log: logger.OrNop(log).Named("product_handler")}
}

type productRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       *common.Decimal `json:"price"`
	ImageURL    *string         `json:"imageUrl"`
}

func (req productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
}

type imageUploadRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path, "/products")

	switch {
	case len(parts) == 0 && r.Method == http.MethodGet:
		h.list(w, r)
	case len(parts) == 0 && r.Method == http.MethodPost:
		h.create(w, r)
	case len(parts) == 0:
		methodNotAllowed(w, r)

	case len(parts) == 1 && r.Method == http.MethodGet:
		h.get(w, r, parts[0])
	case len(parts) == 1 && r.Method == http.MethodPut:
		h.update(w, r, parts[0])
	case len(parts) == 1 && r.Method == http.MethodDelete:
		h.delete(w, r, parts[0])
	case len(parts) == 1:
		methodNotAllowed(w, r)

	case len(parts) == 2 && parts[1] == "image-upload-url" && r.Method == http.MethodPost:
		h.imageUploadURL(w, r, parts[0])

	default:
		notFound(w)
	}
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	ps, err := h.uc.List(r.Context())
	if err != nil {
		writeErr(w, h.log, "product_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeErr(w, h.log, "product_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := readJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	p, err := h.uc.Create(r.Context(), req.toInput())
	if err != nil {
		writeErr(w, h.log, "product_handler", err)
		return
	}
	h.log.Info("[product_handler] create ok", "productId", p.ProductID)
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var req productRequest
	if err := readJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	p, err := h.uc.Update(r.Context(), id, req.toInput())
	if err != nil {
		writeErr(w, h.log, "product_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeErr(w, h.log, "product_handler", err)
		return
	}
	writeMessage(w, http.StatusOK, "product deleted")
}

func (h *ProductHandler) imageUploadURL(w http.ResponseWriter, r *http.Request, id string) {
	var req imageUploadRequest
	if err := readJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	up, err := h.uc.ImageUploadURL(r.Context(), id, req.FileName, req.ContentType)
	if err != nil {
		writeErr(w, h.log, "product_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, up)
}
