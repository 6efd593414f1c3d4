package controller

import (
	"quotation-management-api/internal/middleware"
	"quotation-management-api/internal/service"
	"quotation-management-api/pkg/jwtutil"
	"quotation-management-api/pkg/logger"
	"quotation-management-api/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, jwt *jwtutil.JWTUtil, httpMetrics *metrics.HTTPMetrics) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	handler.Use(logger.RequestLogging())
	handler.Use(httpMetrics.Middleware())
	handler.GET("/metrics", httpMetrics.Handler())

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, validate)

	protected := api.Group("", middleware.JWTAuth(jwt))
	newProductRoutesHandler(protected, services, validate)
	newSupplierRoutesHandler(protected, services, validate)
	newRequestRoutesHandler(protected, services, validate)
	newQuotationRoutesHandler(protected, services, validate)
	newAllocationRoutesHandler(protected, services)
	newDashboardRoutesHandler(protected, services)
}
