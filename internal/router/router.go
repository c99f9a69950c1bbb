package router

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/config"
	apperrors "github.com/Aditi-Ethiraj14/OceanSync/internal/errors"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	reportHandler *handler.ReportHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Hazard report routes. Submission identifies the user from the body or
	// a bearer token; listing is open, as in the original client contract.
	api.POST("/hazard-reports", reportHandler.Submit)
	api.GET("/hazard-reports", reportHandler.ListAll)
	api.GET("/hazard-reports/user/:userId", reportHandler.ListByUser)

	// Admin triage routes require a valid access token.
	admin := api.Group("/admin", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))
	admin.GET("/reports", adminHandler.Triage)
	admin.GET("/reports/stats", adminHandler.Stats)
}

// errorHandler serializes handler errors. Anything that is not an explicit
// application error surfaces as a generic 500 so internals never leak.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := apperrors.ErrorResponse{Message: "Internal server error"}

	switch e := err.(type) {
	case *apperrors.HTTPError:
		status = e.Status
		body = e.Response
		if status >= http.StatusInternalServerError {
			c.Logger().Error(err)
		}
	case *echo.HTTPError:
		// Raised by echo itself (404s, method mismatches, echo-jwt 401s).
		status = e.Code
		if msg, ok := e.Message.(string); ok {
			body.Message = msg
		}
	default:
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}
