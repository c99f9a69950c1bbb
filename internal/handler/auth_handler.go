package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/errors"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/model"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserView is the sanitized user representation returned externally. The
// password hash never leaves the server.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterResponse wraps the sanitized user created by registration.
type RegisterResponse struct {
	User UserView `json:"user"`
}

// LoginResponse carries the sanitized user plus the session tokens.
type LoginResponse struct {
	User         UserView `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken,omitempty"`
}

func sanitizeUser(u *model.User) UserView {
	return UserView{ID: u.ID, Username: u.Username, Email: u.Email}
}

// Register godoc
// @Summary Register a new citizen account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errors.NewValidationError(nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return errors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, RegisterResponse{User: sanitizeUser(user)})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.NewValidationError(nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, accessToken, refreshToken, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		User:         sanitizeUser(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
