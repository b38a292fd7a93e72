package controllers

import (
	"net/http"

	"github.com/HifricAldar/cloud-computing/services"
	"github.com/HifricAldar/cloud-computing/utils"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

type AuthController struct {
	google *services.GoogleProvider
	auth   *services.AuthService
}

func NewAuthController(google *services.GoogleProvider, auth *services.AuthService) *AuthController {
	return &AuthController{google: google, auth: auth}
}

// GoogleLogin redirects to the consent screen. The state lands in a
// short-lived cookie and is checked on callback.
func (ctl *AuthController) GoogleLogin(c *gin.Context) {
	state := utils.GenerateRandomToken(24)
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, ctl.google.AuthURL(state))
}

func (ctl *AuthController) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid oauth state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	profile, err := ctl.google.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google login failed"})
		return
	}

	token, err := ctl.auth.ValidateGoogleUser(c.Request.Context(), profile.Email, profile.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}
