package auth

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers the login/logout endpoints and the login page.
func SetupAuthRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	authGroup := app.Group("/auth")

	// Public routes
	authGroup.Get("/login", ShowLoginPage(jwtSecret))
	authGroup.Post("/login", func(c *fiber.Ctx) error {
		return LoginAPI(c, db, jwtSecret)
	})
	authGroup.Post("/logout", LogoutAPI)

	// Protected routes
	authGroup.Use(Middleware(jwtSecret))
	authGroup.Post("/change-password", func(c *fiber.Ctx) error {
		return ChangePasswordAPI(c, db)
	})
}

// ShowLoginPage renders the login form, skipping straight to the dashboard
// for an already-authenticated session.
func ShowLoginPage(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString := c.Cookies("jwt_token"); tokenString != "" {
			if _, err := ValidateJWT(jwtSecret, tokenString); err == nil {
				return c.Redirect("/dashboard")
			}
		}
		return c.Render("login", fiber.Map{
			"Title": "Login - Apartment Billing",
		})
	}
}

// Middleware validates the JWT cookie (or bearer token) and stores the
// authenticated user's identity on the request context.
func Middleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("jwt_token")
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

		if tokenString == "" {
			if isAPIRequest {
				return c.Status(401).JSON(fiber.Map{"error": "No token found"})
			}
			return c.Redirect("/auth/login")
		}

		claims, err := ValidateJWT(jwtSecret, tokenString)
		if err != nil {
			if isAPIRequest {
				return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
			}
			return c.Redirect("/auth/login")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		return c.Next()
	}
}
