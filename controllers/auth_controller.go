package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-console/auth"
	"hotel-console/middleware"
	"hotel-console/utils"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	Svc        *auth.Service
	EntryPage  string
	SessionTTL time.Duration
	log        *slog.Logger
}

func NewAuthController(svc *auth.Service, entryPage string, ttl time.Duration, log *slog.Logger) *AuthController {
	return &AuthController{Svc: svc, EntryPage: entryPage, SessionTTL: ttl, log: log}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	res, err := ac.Svc.Login(c.Request.Context(), strings.TrimSpace(payload.Email), payload.Password)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	if !res.Success {
		c.JSON(http.StatusUnauthorized, res)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, res.Token, int(ac.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, res)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Svc.Logout(c.Request.Context(), middleware.Token(c)); err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"redirect": ac.EntryPage})
}

// GET /api/auth/session
func (ac *AuthController) Session(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, middleware.CurrentSession(c))
}
