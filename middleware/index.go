package middleware

import (
	"errors"
	"os"
	"strings"

	"travel_booking/constants"
	"travel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected rejects the request before any handler runs when no valid
// token is present. Protected pages never render for an anonymous caller.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		if IsTokenRevoked(token) {
			return utils.ErrorResponse(c, 401, "Token revoked", errors.New("logged out token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly layers the role requirement on top of Protected. The role is
// read from the token claims; handlers re-verify against the database via
// helper.GetInfoUserFromToken before acting.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return utils.ErrorResponse(c, 401, constants.NOT_LOGGED_IN, errors.New("no token"))
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.ErrorResponse(c, 401, constants.NOT_LOGGED_IN, errors.New("invalid claims"))
		}
		role, _ := claims["role"].(string)
		if role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, 403, constants.NOT_ADMIN, errors.New("not admin"))
		}
		return c.Next()
	}
}

func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		if authHeader == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", token)
		return c.Next()
	}
}
