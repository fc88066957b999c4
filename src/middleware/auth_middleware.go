package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fraudwatch-server/src/logger"
	"fraudwatch-server/src/models"
)

type ctxKey string

const (
	analystIDKey  ctxKey = "analyst_id"
	usernameKey   ctxKey = "username"
	superAdminKey ctxKey = "super_admin"
)

// IssueToken signs an HS256 token for the analyst.
func IssueToken(secret []byte, analyst *models.Analyst, expires time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"analyst_id":  analyst.ID,
		"username":    analyst.Username,
		"super_admin": analyst.SuperAdmin,
		"exp":         expires.Unix(),
	})
	return token.SignedString(secret)
}

// ParseTokenFromRequest extracts and validates the bearer token, returning claims if valid
func ParseTokenFromRequest(r *http.Request, secret []byte) (jwt.MapClaims, error) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		return nil, fmt.Errorf("missing token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func JWTAuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := ParseTokenFromRequest(r, secret)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			analystID, ok1 := claims["analyst_id"].(float64)
			username, ok2 := claims["username"].(string)
			superAdmin, ok3 := claims["super_admin"].(bool)
			if !ok1 || !ok2 || !ok3 {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), analystIDKey, int64(analystID))
			ctx = context.WithValue(ctx, usernameKey, username)
			ctx = context.WithValue(ctx, superAdminKey, superAdmin)
			ctx = logger.WithFields(ctx, map[string]interface{}{
				"analyst_id": int64(analystID),
				"username":   username,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SuperAdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		superAdmin, ok := r.Context().Value(superAdminKey).(bool)
		if !ok || !superAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func AnalystIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(analystIDKey).(int64)
	return id, ok
}

func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}
