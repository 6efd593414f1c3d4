package controller

import (
	"net/http"
	"quotation-management-api/internal/service"

	"github.com/labstack/echo"
)

type dashboardRoutesHandler struct {
	dashboardService service.Dashboard
}

func newDashboardRoutesHandler(outer *echo.Group, services *service.Services) *dashboardRoutesHandler {
	h := &dashboardRoutesHandler{
		dashboardService: services.Dashboard,
	}

	outer.GET("/dashboard", h.GetStats)

	return h
}

// /dashboard
func (h *dashboardRoutesHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, stats); e != nil {
		return e
	}

	return nil
}
