package controllers

import (
	"errors"
	"net/http"

	"gemstone-admin/config"
	"gemstone-admin/libs"
	"gemstone-admin/models"
	"gemstone-admin/services"
	"gemstone-admin/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	auth   *services.AuthService
	mailer *libs.Mailer
}

func NewAuthController(auth *services.AuthService, mailer *libs.Mailer) *AuthController {
	return &AuthController{auth: auth, mailer: mailer}
}

// @Summary Admin login
// @Description Authenticate an admin and issue a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Email and password are required",
			Error:   err.Error(),
		})
		return
	}

	token, user, err := ctrl.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid email or password",
			})
			return
		}
		if errors.Is(err, upstream.ErrSessionExpired) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid email or password",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

// @Summary Request a password reset
// @Description Start the password reset flow for an admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Account email"
// @Success 200 {object} models.Response
// @Router /auth/forgot-password [post]
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "A valid email is required",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	// The notification mail is best effort; the reset itself already went
	// through upstream.
	if ctrl.mailer != nil {
		if err := ctrl.mailer.SendPasswordResetNotice(req.Email); err != nil {
			config.Logger.Warn("reset notice mail failed", zap.String("email", req.Email), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If the account exists, reset instructions have been sent",
	})
}

// @Summary Current session
// @Description Return the identity bound to the session token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session active",
		"data": gin.H{
			"id":    c.GetString("user_id"),
			"email": c.GetString("user_email"),
			"name":  c.GetString("user_name"),
			"role":  c.GetString("user_role"),
		},
	})
}
