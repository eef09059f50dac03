package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"fleetsim-backend/internal/models"
	"fleetsim-backend/pkg/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string                  `json:"token"`
	Manager *models.ManagerResponse `json:"manager"`
}

func Login(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		jwtSecret := os.Getenv("APP_JWT_SECRET")
		if jwtSecret == "" {
			log.Println("❌ JWT secret not configured")
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		var manager models.Manager
		err := db.Get(&manager, "SELECT * FROM managers WHERE email = $1", req.Email)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(manager.Password), []byte(req.Password)); err != nil {
			utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"manager_id": manager.ID,
			"email":      manager.Email,
			"iat":        time.Now().Unix(),
			"exp":        time.Now().Add(7 * 24 * time.Hour).Unix(),
		})

		tokenString, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to create token")
			return
		}

		response := manager.ToManagerResponse()
		log.Printf("✅ Login successful: %s", manager.Email)

		utils.JSON(w, http.StatusOK, LoginResponse{
			Token:   tokenString,
			Manager: &response,
		})
	}
}
