package middleware

import (
	"context"
	"strings"

	"github.com/larturi/crm-graphql-go/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type ctxKey int

const claimsCtxKey ctxKey = iota

// WithClaims returns a context carrying the verified claims.
func WithClaims(ctx context.Context, claims *JWTClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, claims)
}

// ClaimsFromContext retrieves the verified claims, if the request carried a
// valid token.
func ClaimsFromContext(ctx context.Context) (*JWTClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey).(*JWTClaims)
	return claims, ok
}

// ParseToken verifies an HS256 token and returns its typed claims.
func ParseToken(tokenStr, secret string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.InvalidToken()
	}
	return claims, nil
}

// JWTContext reads the authorization header and, when the token verifies,
// injects the claims into the request context. An absent or invalid token
// does NOT reject the request: the context simply stays unauthenticated and
// caller-scoped resolvers fail downstream.
func JWTContext(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header != "" {
			tokenStr := strings.TrimPrefix(header, "Bearer ")
			claims, err := ParseToken(tokenStr, secret)
			if err != nil {
				log.Debug().
					Str("request_id", c.GetString(RequestIDKey)).
					Msg("invalid bearer token, continuing unauthenticated")
			} else {
				c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))
			}
		}
		c.Next()
	}
}
