package api

import (
	"bytes"
	"net/http"

	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	invoiceFileName    = "Invoice.txt"
	invoiceContentType = "text/plain; charset=utf-8"
)

type InvoiceHandler struct {
	q queries.InvoiceQueries
}

func NewInvoiceHandler(q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{q: q}
}

// @Summary List invoices
// @Description Every non-empty invoice sorted by title
// @Tags invoices
// @Produce json
// @Success 200 {array} resdto.InvoiceResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	views, err := h.q.GetAllInvoices(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceList(views))
}

// @Summary Last invoice
// @Description Zero or one invoice for the most recently issued order id
// @Tags invoices
// @Produce json
// @Success 200 {array} resdto.InvoiceResponse
// @Router /invoices/last [get]
func (h *InvoiceHandler) Last(c *gin.Context) {
	views, err := h.q.GetLastInvoice(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load last invoice")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceList(views))
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetInvoice(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load invoice")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary Download invoices
// @Tags invoices
// @Produce plain
// @Success 200 {string} string
// @Router /invoices/download [get]
func (h *InvoiceHandler) Download(c *gin.Context) {
	views, err := h.q.GetAllInvoices(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list invoices")
		return
	}
	h.writeText(c, views)
}

// @Summary Download last invoice
// @Tags invoices
// @Produce plain
// @Success 200 {string} string
// @Router /invoices/last/download [get]
func (h *InvoiceHandler) DownloadLast(c *gin.Context) {
	views, err := h.q.GetLastInvoice(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load last invoice")
		return
	}
	h.writeText(c, views)
}

func (h *InvoiceHandler) writeText(c *gin.Context, views []queries.InvoiceView) {
	var buf bytes.Buffer
	if err := queries.WriteInvoicesText(&buf, views); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render invoices", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+invoiceFileName+`"`)
	c.Data(http.StatusOK, invoiceContentType, buf.Bytes())
}
