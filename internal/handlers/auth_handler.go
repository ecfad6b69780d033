package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/httpresp"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	ucAccount "github.com/BruksfildServices01/store-ratings/internal/usecase/account"
)

type AuthHandler struct {
	accounts *ucAccount.Service
}

func NewAuthHandler(accounts *ucAccount.Service) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name" binding:"required,display_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strong_password"`
	Address  string `json:"address" binding:"omitempty,max=400"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,strong_password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.accounts.Signup(c.Request.Context(), ucAccount.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"id":      id,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.accounts.ChangePassword(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		req.OldPassword,
		req.NewPassword,
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Password updated successfully"})
}
