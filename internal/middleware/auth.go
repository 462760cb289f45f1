package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/pkg/apperrors"
)

const (
	// AccessTokenCookie is the session cookie carrying the access token.
	AccessTokenCookie = "accessToken"
	// RefreshTokenCookie is cleared on logout alongside the access cookie.
	RefreshTokenCookie = "refreshToken"
)

// AuthMiddleware validates the JWT and attaches the identity to the
// request. The token is read from the accessToken cookie first, falling
// back to an Authorization: Bearer header.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			abortWithError(c, apperrors.NewUnauthorizedError("Authentication token missing"))
			return
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, apperrors.ErrTokenExpired)
			} else {
				abortWithError(c, apperrors.ErrInvalidToken)
			}
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("profession", claims.Profession)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUserID extracts the authenticated user ID from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
