package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/http/middleware"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

var (
	jwtSecret = []byte("dukefarm-dev-secret-change-me")
	tokenTTL  = 24 * time.Hour
)

// ConfigureAuth installs the signing secret and token lifetime from env.
func ConfigureAuth(secret string, ttl time.Duration) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if ttl > 0 {
		tokenTTL = ttl
	}
}

// JWTSecret exposes the active secret to the router's auth middleware.
func JWTSecret() []byte { return jwtSecret }

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/admin/login
func AdminLogin(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, hash, err := repositories.UserRepository{}.GetByEmail(req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "อีเมลหรือรหัสผ่านไม่ถูกต้อง", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "อีเมลหรือรหัสผ่านไม่ถูกต้อง", nil)
		return
	}

	if user.Status != models.AdminStatusActive {
		RespondError(c, http.StatusForbidden, "บัญชีนี้ถูกระงับการใช้งาน", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.UserID,
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "ไม่สามารถสร้างโทเค็นได้", nil)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user_id="+user.UserID)
	RespondData(c, http.StatusOK, models.LoginResult{Token: signed, User: user})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	if userID == "" {
		RespondError(c, http.StatusUnauthorized, "กรุณาเข้าสู่ระบบ", nil)
		return
	}
	user, err := repositories.UserRepository{}.GetByID(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, user)
}
