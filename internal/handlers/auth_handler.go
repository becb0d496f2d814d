package handlers

import (
	"log"

	"blog/internal/middleware"
	"blog/internal/models"
	"blog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)

	protected := authRoutes.Group("", middleware.AuthRequired(h.authService))
	protected.Get("/profile", h.HandleProfile)
	protected.Get("/verify", h.HandleVerify)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// HandleRegister handles new user registration and issues a token for the
// fresh account.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, token, err := h.authService.RegisterUser(req.Email, req.Password, req.Username)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return authErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user.Public(),
		"token": token,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, token, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Email, err)
		return authErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"user":  user.Public(),
		"token": token,
	})
}

// HandleProfile returns the authenticated user's public view.
func (h *AuthHandler) HandleProfile(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserKey).(*models.User)
	return c.JSON(fiber.Map{
		"user": user.Public(),
	})
}

// HandleVerify lets a client confirm its stored token is still usable.
func (h *AuthHandler) HandleVerify(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserKey).(*models.User)
	return c.JSON(fiber.Map{
		"valid": true,
		"user":  user.Public(),
	})
}

// authErrorResponse maps an auth core error kind to its HTTP status. The
// login path deliberately answers 401 even for store lookup failures.
func authErrorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch services.KindOf(err) {
	case services.KindDuplicateEmail:
		status = fiber.StatusConflict
	case services.KindInvalidCredentials, services.KindInvalidToken:
		status = fiber.StatusUnauthorized
	case services.KindSecretMissing:
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
