package api

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	localUserID = "user_id"
	localScanID = "scan_id"

	tokenTTL = 60 * time.Minute
)

// Demo credentials, replaced by a user store in production deployments.
const (
	demoEmail    = "demo@mediscan.ai"
	demoPassword = "demo1234"
	demoUserID   = "demo-user-001"
	demoRole     = "clinician"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Server) login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body."})
	}

	emailOK := subtle.ConstantTimeCompare([]byte(body.Email), []byte(demoEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(body.Password), []byte(demoPassword)) == 1
	if !emailOK || !passwordOK {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid credentials"})
	}

	token, err := createAccessToken(s.cfg.JWTSecret, demoUserID, body.Email, demoRole)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to issue token."})
	}

	return c.JSON(tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// createAccessToken issues an HS256 token with the standard claim set.
func createAccessToken(secret, userID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// requireAuth validates the Bearer token and records the subject for the
// audit log.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Not authenticated"})
	}

	token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid or expired token"})
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if sub, ok := claims["sub"].(string); ok {
			c.Locals(localUserID, sub)
		}
	}

	return c.Next()
}

func userID(c *fiber.Ctx) string {
	if id, ok := c.Locals(localUserID).(string); ok && id != "" {
		return id
	}
	return "anonymous"
}
