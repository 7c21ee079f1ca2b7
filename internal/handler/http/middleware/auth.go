package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nebiyou-tadesse/go-user-service/internal/domain/contract"
	"github.com/nebiyou-tadesse/go-user-service/internal/handler/http/dto"
	"github.com/nebiyou-tadesse/go-user-service/internal/usecase"
)

// Context keys set by AuthMiddleWare for downstream handlers.
const (
	ContextUserIDKey      = "userID"
	ContextAccessTokenKey = "accessToken"
)

// AuthMiddleWare is the single access-control gate for every protected
// route: it extracts the bearer token, rejects revoked tokens, verifies the
// signature and expiry, and attaches the subject identity to the request
// context. Both checks must pass; revocation is checked first only so that a
// logged-out caller sees a consistent message.
func AuthMiddleWare(jwtService usecase.JWTService, blacklist contract.ITokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Access denied. No token provided."})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Access denied. No token provided."})
			return
		}

		revoked, err := blacklist.IsRevoked(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token is invalidated"})
			return
		}

		claims, err := jwtService.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextAccessTokenKey, token)
		c.Next()
	}
}
