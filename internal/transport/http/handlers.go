package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/internal/usecase"
	"github.com/Gunvolt24/tg_store/pkg/httpx"
	"github.com/Gunvolt24/tg_store/pkg/validate"
	"github.com/gin-gonic/gin"
)

// maxProducts — верхняя граница limit для каталога; без limit отдаётся весь каталог в её пределах.
const maxProducts = 100

const msgInvalidJSON = "Invalid JSON payload"

// Deps — зависимости хендлеров.
type Deps struct {
	Orders      ports.OrderIntakeService
	Payments    ports.PaymentService
	Suggester   ports.AddressSuggester
	Catalog     ports.ProductCatalog
	Diagnostics ports.Diagnostics
	Store       ports.KVStore // кэш ответов; nil отключает кэширование
	Log         ports.Logger
}

type Handler struct {
	orders    ports.OrderIntakeService
	payments  ports.PaymentService
	suggester ports.AddressSuggester
	catalog   ports.ProductCatalog
	diag      ports.Diagnostics
	store     ports.KVStore
	log       ports.Logger
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		orders:    d.Orders,
		payments:  d.Payments,
		suggester: d.Suggester,
		catalog:   d.Catalog,
		diag:      d.Diagnostics,
		store:     d.Store,
		log:       d.Log,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, h.diag.Health(c.Request.Context()))
}

func (h *Handler) debug(c *gin.Context) {
	c.JSON(http.StatusOK, h.diag.Snapshot(c.Request.Context()))
}

func (h *Handler) listProducts(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, maxProducts, maxProducts)
	c.JSON(http.StatusOK, h.catalog.Products(c.Request.Context(), limit, offset))
}

// createOrder — тело передаётся в сервис сырым: лимит размера проверяется до разбора.
func (h *Handler) createOrder(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.writeError(c, err)
		return
	}

	receipt, err := h.orders.AcceptOrder(c.Request.Context(), raw)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *Handler) createPayment(c *gin.Context) {
	var req domain.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			h.writeError(c, err)
			return
		}
		httpx.AbortWithError(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	link, err := h.payments.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

type suggestionsRequest struct {
	Query string `json:"query"`
}

type suggestionsResponse struct {
	Suggestions []domain.AddressSuggestion `json:"suggestions"`
}

// addressSuggestions — подсказки best-effort: любая ошибка тела даёт пустой список.
func (h *Handler) addressSuggestions(c *gin.Context) {
	var req suggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf(c.Request.Context(), "address suggestions: bad body: %v", err)
		c.JSON(http.StatusOK, suggestionsResponse{Suggestions: []domain.AddressSuggestion{}})
		return
	}
	c.JSON(http.StatusOK, suggestionsResponse{Suggestions: h.suggester.Suggest(c.Request.Context(), req.Query)})
}

// writeError — ошибка сервиса в HTTP-статус.
// Ошибки клиента отдаются с описанием, прочие — общим сообщением, детали только в логе.
func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		ve  *validate.ValidationError
		mbe *http.MaxBytesError
	)
	switch {
	case errors.As(err, &ve):
		httpx.AbortWithError(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, usecase.ErrMalformedPayload):
		httpx.AbortWithError(c, http.StatusBadRequest, msgInvalidJSON)
	case errors.Is(err, validate.ErrInvalidOrder), errors.Is(err, usecase.ErrInvalidPayment):
		httpx.AbortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrPayloadTooLarge), errors.As(err, &mbe):
		httpx.AbortWithError(c, http.StatusRequestEntityTooLarge, httpx.MsgTooLarge)
	default:
		h.log.Errorf(c.Request.Context(), "%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		httpx.AbortInternal(c)
	}
}
