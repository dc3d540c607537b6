package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// CartHandler handles HTTP requests for cart operations. Carts are scoped
// by the email supplied in the body or query, not by token identity.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addCartItemRequest struct {
	MenuItemID string  `json:"menu_item_id" validate:"required"`
	Name       string  `json:"name"         validate:"required"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"        validate:"required,gt=0"`
	Email      string  `json:"email"        validate:"required,email"`
}

// Add handles POST /carts.
//
// @Summary      Add an item to a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Cart item"
// @Success      201   {object}  domain.InsertAck
// @Failure      400   {object}  errorResponse
// @Router       /carts [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ack, err := h.service.Add(c.Request().Context(), ports.AddCartItemInput{
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		Email:      req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ack)
}

// List handles GET /carts?email=.
//
// @Summary      List cart items for an email
// @Tags         carts
// @Produce      json
// @Param        email  query    string  true  "Owner email"
// @Success      200    {array}  domain.CartItem
// @Failure      400    {object} errorResponse
// @Router       /carts [get]
func (h *CartHandler) List(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	items, err := h.service.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /carts/:id. A missing id reports a zero-count ack.
//
// @Summary      Remove a cart item
// @Tags         carts
// @Produce      json
// @Param        id   path      string  true  "Cart item id"
// @Success      200  {object}  domain.DeleteAck
// @Router       /carts/{id} [delete]
func (h *CartHandler) Delete(c echo.Context) error {
	ack, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ack)
}
