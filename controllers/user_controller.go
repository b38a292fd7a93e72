package controllers

import (
	"net/http"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
	otp   *services.OtpService
	auth  *services.AuthService
}

func NewUserController(users *services.UserService, otp *services.OtpService, auth *services.AuthService) *UserController {
	return &UserController{users: users, otp: otp, auth: auth}
}

func (ctl *UserController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.users.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, token)
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *UserController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, token)
}

type VerifyOtpInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (ctl *UserController) VerifyOtp(c *gin.Context) {
	var input VerifyOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.otp.Verify(c.Request.Context(), input.Email, input.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification successful"})
}

type ResendOtpInput struct {
	Email string `json:"email" binding:"required,email"`
}

func (ctl *UserController) ResendOtp(c *gin.Context) {
	var input ResendOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.otp.Resend(c.Request.Context(), input.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

// GetUserByEmail only serves the caller's own record.
func (ctl *UserController) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")
	if c.GetString("email") != email {
		respondError(c, apperrors.Forbidden("You are not allowed"))
		return
	}

	user, err := ctl.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
