package httpapi

import (
	"net/http"

	"marketstore-be/internal/middleware"
	"marketstore-be/internal/user"

	"github.com/gin-gonic/gin"
)

const authCookieMaxAge = 24 * 60 * 60

type registerReq struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`

	Username string `json:"username"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	CompanyName  string `json:"company_name"`
	INN          string `json:"inn"`
	CompanyPhone string `json:"company_phone"`
}

func (s *Server) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	token, u, err := s.users.Register(c.Request.Context(), user.RegisterParams{
		Role:         user.Role(req.Role),
		Email:        req.Email,
		Password:     req.Password,
		Username:     req.Username,
		Phone:        req.Phone,
		Address:      req.Address,
		CompanyName:  req.CompanyName,
		INN:          req.INN,
		CompanyPhone: req.CompanyPhone,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	setAuthCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	token, u, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
	})
}

func (s *Server) logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.AuthCookie, token, authCookieMaxAge, "/", "", false, true)
}
