package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-console/middleware"
	"hotel-console/permissions"
	"hotel-console/services"
	"hotel-console/utils"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /api/dashboard
func (dc *DashboardController) Get(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, dc.Svc.For(c.Request.Context(), middleware.CurrentSession(c)))
}

// GET /api/me/capabilities
func Capabilities(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, permissions.For(middleware.CurrentSession(c)))
}
