package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
)

// PaymentHandler handles HTTP requests for payment operations.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type recordPaymentRequest struct {
	ParcelID  string  `json:"parcel_id" validate:"required"`
	Amount    float64 `json:"amount"    validate:"required,gt=0"`
	Method    string  `json:"method"    validate:"required,oneof=CASH MONCASH CARD BANK_TRANSFER"`
	Reference string  `json:"reference"`
	Notes     string  `json:"notes"`
}

type paymentResponse struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcel_id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Reference     string    `json:"reference,omitempty"`
	ReceivedBy    string    `json:"received_by"`
	Notes         string    `json:"notes,omitempty"`
	ReceiptNumber string    `json:"receipt_number"`
	CreatedAt     time.Time `json:"created_at"`
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		ParcelID:      p.ParcelID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Reference:     p.Reference,
		ReceivedBy:    p.ReceivedBy,
		Notes:         p.Notes,
		ReceiptNumber: p.ReceiptNumber,
		CreatedAt:     p.CreatedAt.UTC(),
	}
}

// Record handles POST /payments. The operator recording the payment is taken
// from the auth claims, not the request body.
//
// @Summary      Record a payment against a parcel
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Payment details"
// @Success      201   {object}  paymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	payment, err := h.service.RecordPayment(c.Request().Context(), ports.RecordPaymentInput{
		ParcelID:   req.ParcelID,
		Amount:     req.Amount,
		Method:     req.Method,
		Reference:  req.Reference,
		ReceivedBy: email,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

// List handles GET /payments?parcelId=.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        parcelId  query     string  false  "Filter by parcel; omit for the most recent payments overall"
// @Success      200       {array}   paymentResponse
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.service.ListPayments(c.Request().Context(), c.QueryParam("parcelId"))
	if err != nil {
		return err
	}

	out := make([]paymentResponse, len(payments))
	for i, p := range payments {
		out[i] = toPaymentResponse(p)
	}
	return c.JSON(http.StatusOK, out)
}

// Receipt handles GET /payments/:id/receipt and streams the rendered receipt
// as a download.
//
// @Summary      Download a payment receipt
// @Tags         payments
// @Produce      plain
// @Security     BearerAuth
// @Param        id  path  string  true  "Payment ID"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c echo.Context) error {
	receipt, err := h.service.Receipt(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+receipt.Filename+`"`)
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, receipt.Body)
}
