package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/api/metrics"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type registerUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// Register handles POST /users. Registration is idempotent: a duplicate
// email performs no second write and returns an "already exists" marker.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User record"
// @Success      200   {object}  messageResponse
// @Success      201   {object}  domain.InsertAck
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}

	if result.AlreadyExists {
		return c.JSON(http.StatusOK, messageResponse{Message: "user already exists"})
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, result.Ack)
}

// List handles GET /users. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// AdminStatus handles GET /users/admin/:email. The path email must match
// the authenticated caller's email: one identity may not probe another's
// role. The role itself is resolved fresh from the directory.
//
// @Summary      Check whether the caller is an admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller's own email"
// @Success      200    {object}  adminStatusResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	claimEmail, err := ctxEmail(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	if email != claimEmail {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	admin, err := h.service.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminStatusResponse{Admin: admin})
}

// Promote handles PATCH /users/admin/:id. Admin only. Sets the role to
// admin; an unknown id reports a zero-count ack.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.UpdateAck
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/admin/{id} [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	ack, err := h.service.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ack)
}

// Delete handles DELETE /users/:id. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.DeleteAck
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	ack, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ack)
}
