package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"orgconsole/internal/middleware"
)

func (s *Server) login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := s.store.userByEmail(body.Email)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "user not found or invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		respondMessage(c, http.StatusUnauthorized, "incorrect password")
		return
	}

	s.issueTokens(c, user)
}

func (s *Server) refreshToken(c *gin.Context) {
	var body struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := middleware.ValidateToken(body.RefreshToken)
	if err != nil || !token.Valid {
		respondMessage(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		respondMessage(c, http.StatusUnauthorized, "not a refresh token")
		return
	}
	uid, _ := claims["user_id"].(float64)
	user, ok := s.store.userByID(int(uid))
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "unknown user")
		return
	}

	s.issueTokens(c, user)
}

func (s *Server) issueTokens(c *gin.Context, user User) {
	token, err := middleware.GenerateToken(user.ID, user.Role, user.OrganizationID)
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, "could not generate token")
		return
	}
	refresh, err := middleware.GenerateRefreshToken(user.ID)
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, "could not generate refresh token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":         token,
		"refresh_token": refresh,
	})
}
