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

type UserController struct {
	service      service.AuthService
	adminService service.AdminUserService
}

func CreateUserController(e *echo.Group, svc service.AuthService, adminSvc service.AdminUserService, jwtSecret string) {
	c := UserController{service: svc, adminService: adminSvc}

	e.GET("/users", c.GetUsers, middleware.RequireRole(jwtSecret, domain.RoleAdmin, domain.RoleUniversity))
	e.GET("/users/universities", c.GetUniversities)
	e.GET("/users/email/:email", c.GetUserByEmail)
	e.GET("/users/:id", c.GetUserByID)
}

// GetUsers lets admins and universities page through identities; universities
// use it to pick students during certificate issuance.
func (c *UserController) GetUsers(e echo.Context) error {
	filter := dto.UserFilter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
	}

	res, err := c.adminService.GetUsers(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}

// GetUniversities is public: it feeds the university dropdown on the student
// registration form.
func (c *UserController) GetUniversities(e echo.Context) error {
	res, err := c.service.GetUniversities(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}

func (c *UserController) GetUserByEmail(e echo.Context) error {
	res, err := c.service.GetUserByEmail(e.Request().Context(), e.Param("email"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}

func (c *UserController) GetUserByID(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.service.GetUserByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}
