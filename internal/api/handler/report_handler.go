package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yng-express/parcel-admin/internal/core/ports"
)

// ReportHandler handles HTTP requests for the reporting views.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard handles GET /reports/dashboard.
//
// @Summary      Dashboard KPI cards
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// StatusBreakdown handles GET /reports/status-breakdown.
//
// @Summary      Parcel counts per status
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.StatusCount
// @Router       /reports/status-breakdown [get]
func (h *ReportHandler) StatusBreakdown(c echo.Context) error {
	counts, err := h.service.StatusBreakdown(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// Revenue handles GET /reports/revenue.
//
// @Summary      Revenue totals and monthly series
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.RevenueReport
// @Router       /reports/revenue [get]
func (h *ReportHandler) Revenue(c echo.Context) error {
	report, err := h.service.Revenue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// CustomerGrowth handles GET /reports/customer-growth?months=.
//
// @Summary      New customers per month
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        months  query    int  false  "Number of months to cover (default 6)"
// @Success      200     {array}  ports.MonthlyCount
// @Router       /reports/customer-growth [get]
func (h *ReportHandler) CustomerGrowth(c echo.Context) error {
	months, _ := strconv.Atoi(c.QueryParam("months"))

	series, err := h.service.CustomerGrowth(c.Request().Context(), months)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

// ShippingVolume handles GET /reports/shipping-volume?days=.
//
// @Summary      Parcels registered per day
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        days  query    int  false  "Number of days to cover (default 30)"
// @Success      200   {array}  ports.DailyCount
// @Router       /reports/shipping-volume [get]
func (h *ReportHandler) ShippingVolume(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	series, err := h.service.ShippingVolume(c.Request().Context(), days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}
