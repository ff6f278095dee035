package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yng-express/parcel-admin/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Create handles POST /customers.
//
// @Summary      Register a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  customerResponse
// @Failure      400   {object}  errorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.CreateCustomer(c.Request().Context(), toCreateCustomerInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// Get handles GET /customers/:id. The response carries the parcel aggregates
// shown on the customer detail header alongside the profile itself.
//
// @Summary      Get a customer by ID
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Customer ID"
// @Success      200  {object}  customerDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	detail, err := h.service.GetCustomerDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerDetailResponse(detail))
}

// List handles GET /customers?search=.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Free-text filter on name, email, phone or mailbox code"
// @Success      200     {array}   customerResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.ListCustomers(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerListResponse(customers))
}

// SearchByCode handles GET /customers/search/by-code?code=.
// Powers the mailbox-code autocomplete on the new-parcel form.
//
// @Summary      Search customers by mailbox code prefix
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        code  query     string  true  "Mailbox code prefix (min 2 characters)"
// @Success      200   {array}   customerResponse
// @Router       /customers/search/by-code [get]
func (h *CustomerHandler) SearchByCode(c echo.Context) error {
	customers, err := h.service.SearchByCode(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerListResponse(customers))
}
