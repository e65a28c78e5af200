package handlers

import (
	"errors"

	"money-manager/internal/dto"
	"money-manager/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register with name, email and password; seeds the default categories
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr, ok := validationError(req.Validate()); ok {
		return failValidation(c, verr)
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return fail(c, fiber.StatusConflict, "User already exists with this email")
		}
		h.logger.Error("Registration failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error registering user")
	}

	return created(c, "User registered successfully", resp)
}

// Login godoc
// @Summary Login user
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr, ok := validationError(req.Validate()); ok {
		return failValidation(c, verr)
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		h.logger.Error("Login failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error logging in")
	}

	return okMessage(c, "Login successful", resp)
}

// Me godoc
// @Summary Get current user
// @Description Resolve the bearer token to the owning user
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := h.authService.Me(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch user", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching user data")
	}

	return ok(c, fiber.Map{"user": user})
}
