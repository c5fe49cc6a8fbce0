package controller

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/auth/domain"
	"github.com/studentcert/studentcert/internal/auth/dto"
	"github.com/studentcert/studentcert/internal/auth/service"
	"github.com/studentcert/studentcert/internal/middleware"
	"github.com/studentcert/studentcert/pkg/errs"
	"github.com/studentcert/studentcert/pkg/response"
)

type AdminUserController struct {
	service service.AdminUserService
}

func CreateAdminUserController(e *echo.Group, svc service.AdminUserService, jwtSecret string) {
	c := AdminUserController{service: svc}

	g := e.Group("/admin/users", middleware.RequireRole(jwtSecret, domain.RoleAdmin))
	g.GET("", c.GetUsers)
	g.GET("/:id", c.GetUser)
	g.PUT("/:id", c.UpdateUser)
	g.DELETE("/:id", c.DeleteUser)
	g.PUT("/:id/verify", c.VerifyUser)
	g.PUT("/:id/activate", c.ActivateUser)
	g.PUT("/:id/deactivate", c.DeactivateUser)
}

func (c *AdminUserController) GetUsers(e echo.Context) error {
	filter := dto.UserFilter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
	}

	res, err := c.service.GetUsers(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}

func (c *AdminUserController) GetUser(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.GetUserByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}

func (c *AdminUserController) UpdateUser(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.UpdateUserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
	}

	res, err := c.service.UpdateUser(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User updated successfully", res)
}

func (c *AdminUserController) DeleteUser(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := c.service.DeleteUser(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User deleted successfully", nil)
}

func (c *AdminUserController) VerifyUser(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.VerifyUser(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User verified successfully", res)
}

func (c *AdminUserController) ActivateUser(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.ActivateUser(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User activated successfully", res)
}

func (c *AdminUserController) DeactivateUser(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.DeactivateUser(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User deactivated successfully", res)
}

func parseID(e echo.Context) (int64, error) {
	return strconv.ParseInt(e.Param("id"), 10, 64)
}
