package controllers

import (
	"net/http"

	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/pkg/resp"
	"github.com/Asian-Restaurant/backend/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validation("Missing required fields"))
		return
	}

	if err := a.auth.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "User registered successfully")
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validation("Missing email or password"))
		return
	}

	if err := a.auth.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Login successful")
}

// GET /user?email=
func (a *AuthController) GetUser(c *gin.Context) {
	user, err := a.auth.GetUser(c.Request.Context(), c.Query("email"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
	})
}
