package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"spotQuest/pkg/logger"
	jsonres "spotQuest/pkg/response"
	"spotQuest/pkg/utils"

	"github.com/labstack/echo/v4"
)

// TokenValidator resolves a session token to the user id it was issued for.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, jsonres.Error("UNAUTHORIZED", "Unauthorized", nil))
}

func bearerToken(c echo.Context) (string, bool) {
	tokenParts := strings.Split(c.Request().Header.Get("Authorization"), " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", false
	}
	return tokenParts[1], true
}

// AuthMiddleware basic JWT authentication signed with secret. When
// tokenValidator is non-nil the token must also be a live session in the store.
func AuthMiddleware(secret string, tokenValidator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return unauthorized(c)
			}

			claims, err := utils.ParseJWT(tokenString, secret)
			if err != nil {
				logger.Debug("Failed to parse JWT", "error", err)
				return unauthorized(c)
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || expAt == nil || time.Now().After(expAt.Time) {
				return unauthorized(c)
			}

			if tokenValidator != nil {
				ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
				defer cancel()

				userID, err := tokenValidator.ValidateToken(ctx, tokenString)
				if err != nil {
					logger.Warn("Session validation failed", "error", err)
					return unauthorized(c)
				}

				if userID != claims.UserID {
					logger.Warn("UserID mismatch between JWT and session store")
					return unauthorized(c)
				}
			}

			userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil || userIDUint == 0 {
				logger.Warn("Invalid user ID in token", "user_id", claims.UserID)
				return unauthorized(c)
			}

			c.Set("user_id", uint(userIDUint))
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
