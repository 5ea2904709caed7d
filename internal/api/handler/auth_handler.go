package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nlog/notes-system/internal/api/metrics"
	"github.com/nlog/notes-system/internal/core/domain"
	"github.com/nlog/notes-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginRequest mirrors the OAuth2 password flow: form-encoded, with the
// email travelling in the username field.
type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup creates a new user account.
//
// @Summary      Create a new user account
// @Description  Register a new user by providing their name, email, and password. If the provided email already exists in the system, the request will fail with an error.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "User registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.SignUp(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignupsTotal.WithLabelValues("duplicate_email").Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User created successfully"})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Authenticate and get access token
// @Description  Logs in a user using their email and password. If the credentials are valid, returns a JWT access token for subsequent requests.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Account password"
// @Success      200       {object}  tokenResponse
// @Failure      401       {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
