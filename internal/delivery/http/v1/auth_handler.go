package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-admin/config"
	"jobboard-admin/internal/delivery/http/response"
	"jobboard-admin/internal/domain"
	"jobboard-admin/pkg/apperror"
)

type AuthHandler struct {
	sessionUC domain.SessionUsecase
	config    *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, sessionUC domain.SessionUsecase, cfg *config.Config) {
	handler := &AuthHandler{
		sessionUC: sessionUC,
		config:    cfg,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/logout", handler.Logout)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// Login godoc
// @Summary      Admin Login
// @Description  Sign in with email and password. Only accounts carrying the admin claim receive a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response{data=LoginResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email and password are required"))
		return
	}

	sess, err := h.sessionUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, sess.IDToken, int(sess.ExpiresInSec), "/", "", h.config.CookieSecure, true)

	response.Success(c, http.StatusOK, "Login successful", LoginResponse{
		UID:          sess.UID,
		Email:        sess.Email,
		IDToken:      sess.IDToken,
		RefreshToken: sess.RefreshToken,
		ExpiresIn:    sess.ExpiresInSec,
	})
}

// Logout godoc
// @Summary      Admin Logout
// @Description  Clears the session cookie. Idempotent; succeeds with or without an active session.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, "", -1, "/", "", h.config.CookieSecure, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current Admin
// @Description  Returns the signed-in admin identity after a fresh claim check.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(string(domain.KeyAdminUID))
	email := c.GetString(string(domain.KeyAdminEmail))
	response.Success(c, http.StatusOK, "Authenticated", gin.H{
		"uid":   uid,
		"email": email,
	})
}
