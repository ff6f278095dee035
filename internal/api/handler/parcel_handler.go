package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yng-express/parcel-admin/internal/core/ports"
)

// ParcelHandler handles HTTP requests for parcel operations.
type ParcelHandler struct {
	service ports.ParcelService
}

func NewParcelHandler(service ports.ParcelService) *ParcelHandler {
	return &ParcelHandler{service: service}
}

// Create handles POST /parcels.
//
// @Summary      Register a new parcel
// @Tags         parcels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createParcelRequest  true  "Parcel details; include manual_pricing to bypass the estimator"
// @Success      201   {object}  parcelResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /parcels [post]
func (h *ParcelHandler) Create(c echo.Context) error {
	var req createParcelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	parcel, err := h.service.CreateParcel(c.Request().Context(), toCreateParcelInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toParcelResponse(parcel))
}

// Get handles GET /parcels/:id.
//
// @Summary      Get a parcel by ID
// @Tags         parcels
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Parcel ID"
// @Success      200  {object}  parcelResponse
// @Failure      404  {object}  errorResponse
// @Router       /parcels/{id} [get]
func (h *ParcelHandler) Get(c echo.Context) error {
	parcel, err := h.service.GetParcel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParcelResponse(parcel))
}

// GetByTracking handles GET /parcels/tracking/:trackingNumber. Used by the
// barcode search box, which accepts either tracking numbers or barcodes.
//
// @Summary      Get a parcel by tracking number
// @Tags         parcels
// @Produce      json
// @Security     BearerAuth
// @Param        trackingNumber  path      string  true  "Tracking number (e.g. YNG-7A8B9C2D)"
// @Success      200             {object}  parcelResponse
// @Failure      404             {object}  errorResponse
// @Router       /parcels/tracking/{trackingNumber} [get]
func (h *ParcelHandler) GetByTracking(c echo.Context) error {
	parcel, err := h.service.GetParcelByTracking(c.Request().Context(), c.Param("trackingNumber"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParcelResponse(parcel))
}

// List handles GET /parcels?status=&customerId=&search=.
//
// @Summary      List parcels
// @Tags         parcels
// @Produce      json
// @Security     BearerAuth
// @Param        status      query     string  false  "Filter by status token"
// @Param        customerId  query     string  false  "Filter by owning customer"
// @Param        search      query     string  false  "Free-text filter on tracking number, barcode or description"
// @Success      200         {array}   parcelResponse
// @Router       /parcels [get]
func (h *ParcelHandler) List(c echo.Context) error {
	parcels, err := h.service.ListParcels(c.Request().Context(), ports.ListParcelsFilter{
		Status:     c.QueryParam("status"),
		CustomerID: c.QueryParam("customerId"),
		Search:     c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParcelListResponse(parcels))
}

// UpdateStatus handles PATCH /parcels/:id/status. The response carries the
// freshly reloaded parcel; callers replace their view wholesale.
//
// @Summary      Update a parcel's status
// @Tags         parcels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Parcel ID"
// @Param        body  body      updateStatusRequest  true  "New status with optional location and description"
// @Success      200   {object}  parcelResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /parcels/{id}/status [patch]
func (h *ParcelHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	parcel, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		ParcelID:    c.Param("id"),
		Status:      req.Status,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toParcelResponse(parcel))
}
