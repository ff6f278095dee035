package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yng-express/parcel-admin/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for invoice operations.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

type invoiceSummaryResponse struct {
	ID             string    `json:"id"`
	InvoiceNumber  string    `json:"invoice_number"`
	ParcelID       string    `json:"parcel_id"`
	TrackingNumber string    `json:"tracking_number"`
	CustomerName   string    `json:"customer_name"`
	TotalAmount    float64   `json:"total_amount"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
}

type invoiceDetailResponse struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoice_number"`
	CreatedAt     time.Time         `json:"created_at"`
	Parcel        parcelResponse    `json:"parcel"`
	Customer      customerResponse  `json:"customer"`
	Payments      []paymentResponse `json:"payments"`
	TotalPaid     float64           `json:"total_paid"`
	Balance       float64           `json:"balance"`
}

// List handles GET /invoices.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  invoiceSummaryResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	summaries, err := h.service.ListInvoices(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]invoiceSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = invoiceSummaryResponse{
			ID:             s.ID,
			InvoiceNumber:  s.InvoiceNumber,
			ParcelID:       s.ParcelID,
			TrackingNumber: s.TrackingNumber,
			CustomerName:   s.CustomerName,
			TotalAmount:    s.TotalAmount,
			PaymentStatus:  s.PaymentState,
			CreatedAt:      s.CreatedAt.UTC(),
		}
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /invoices/:id and returns the full invoice view: the
// document plus its parcel, customer, payments and running balance.
//
// @Summary      Get an invoice by ID
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Invoice ID"
// @Success      200  {object}  invoiceDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	detail, err := h.service.GetInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	payments := make([]paymentResponse, len(detail.Payments))
	for i, p := range detail.Payments {
		payments[i] = toPaymentResponse(p)
	}

	return c.JSON(http.StatusOK, invoiceDetailResponse{
		ID:            detail.Invoice.ID,
		InvoiceNumber: detail.Invoice.InvoiceNumber,
		CreatedAt:     detail.Invoice.CreatedAt.UTC(),
		Parcel:        toParcelResponse(detail.Parcel),
		Customer:      toCustomerResponse(detail.Customer),
		Payments:      payments,
		TotalPaid:     detail.TotalPaid,
		Balance:       detail.Balance,
	})
}

// Download handles GET /invoices/:id/download and streams the rendered
// invoice document.
//
// @Summary      Download an invoice document
// @Tags         invoices
// @Produce      plain
// @Security     BearerAuth
// @Param        id  path  string  true  "Invoice ID"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /invoices/{id}/download [get]
func (h *InvoiceHandler) Download(c echo.Context) error {
	doc, err := h.service.Document(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, doc.Body)
}

// Send handles POST /invoices/:id/send. Delivery is asynchronous; 202 means
// the job was queued, not that the email went out.
//
// @Summary      Email an invoice to its customer
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Invoice ID"
// @Success      202
// @Failure      404  {object}  errorResponse
// @Router       /invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c echo.Context) error {
	if err := h.service.SendByEmail(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}
