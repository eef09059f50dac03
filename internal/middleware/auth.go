package middleware

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const ManagerContextKey contextKey = "manager"

type ManagerClaims struct {
	ManagerID string `json:"manager_id"`
	Email     string `json:"email"`
}

// Auth validates the bearer token and adds the manager claims to the
// request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		jwtSecret := os.Getenv("APP_JWT_SECRET")
		if jwtSecret == "" {
			log.Println("❌ JWT secret not configured")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		managerID, _ := claims["manager_id"].(string)
		email, _ := claims["email"].(string)
		if managerID == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ManagerContextKey, ManagerClaims{
			ManagerID: managerID,
			Email:     email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetManagerFromContext extracts manager claims from the request context.
func GetManagerFromContext(r *http.Request) (ManagerClaims, bool) {
	claims, ok := r.Context().Value(ManagerContextKey).(ManagerClaims)
	return claims, ok
}
