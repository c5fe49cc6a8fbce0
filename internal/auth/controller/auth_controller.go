package controller

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/auth/dto"
	"github.com/studentcert/studentcert/internal/auth/service"
	"github.com/studentcert/studentcert/internal/middleware"
	"github.com/studentcert/studentcert/pkg/errs"
	"github.com/studentcert/studentcert/pkg/response"
	pkgvalidator "github.com/studentcert/studentcert/pkg/validator"
)

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(e *echo.Group, svc service.AuthService, jwtSecret string) {
	c := AuthController{service: svc}

	e.POST("/auth/register", c.Register)
	e.POST("/auth/login", c.Login)
	e.POST("/auth/logout", c.Logout)
	e.GET("/auth/me", c.Me, middleware.RequireAuth(jwtSecret))
}

func (c *AuthController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return pkgvalidator.WriteValidationError(e, err)
	}

	res, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, fmt.Sprintf("Registration successful. Your UID is: %s", res.Uid), res)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return pkgvalidator.WriteValidationError(e, err)
	}

	res, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Login successful", res)
}

// Logout only acknowledges; the client discards the token.
func (c *AuthController) Logout(e echo.Context) error {
	return response.WriteSuccessResponse(e, "Logout successful", nil)
}

func (c *AuthController) Me(e echo.Context) error {
	claims, ok := middleware.ExtractTokenClaims(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	res, err := c.service.GetUserByID(e.Request().Context(), claims.UserID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User retrieved successfully", res)
}
