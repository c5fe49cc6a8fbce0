package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/university/dto"
	"github.com/studentcert/studentcert/internal/university/service"
	"github.com/studentcert/studentcert/pkg/response"
	pkgvalidator "github.com/studentcert/studentcert/pkg/validator"
)

type Controller struct {
	service service.UniversityService
}

func CreateController(e *echo.Group, svc service.UniversityService) {
	c := Controller{service: svc}

	e.POST("/universities", c.RegisterUniversity)
	e.GET("/universities", c.ListUniversities)
	e.GET("/universities/:id", c.GetUniversity)
	e.PUT("/universities/:id", c.UpdateUniversity)
	e.DELETE("/universities/:id", c.DeleteUniversity)
	e.POST("/universities/:id/verify", c.VerifyUniversity)
	e.POST("/universities/:id/unverify", c.UnverifyUniversity)
	e.GET("/universities/:id/public-key", c.GetPublicKey)
}

func (c *Controller) RegisterUniversity(e echo.Context) error {
	payload := dto.UniversityRegisterRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "RegisterUniversity").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return pkgvalidator.WriteValidationError(e, err)
	}

	res, err := c.service.RegisterUniversity(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "University registered successfully", res)
}

func (c *Controller) ListUniversities(e echo.Context) error {
	filter := dto.UniversityFilter{}
	if err := e.Bind(&filter); err != nil {
		log.Error().Err(err).Str("component", "ListUniversities").Msg("")
	}

	res, err := c.service.ListUniversities(e.Request().Context(), filter.Verified)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}

func (c *Controller) GetUniversity(e echo.Context) error {
	res, err := c.service.GetUniversity(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}

func (c *Controller) UpdateUniversity(e echo.Context) error {
	payload := dto.UniversityUpdateRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateUniversity").Msg("")
	}

	res, err := c.service.UpdateUniversity(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "University updated successfully", res)
}

func (c *Controller) DeleteUniversity(e echo.Context) error {
	if err := c.service.DeleteUniversity(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "University deleted successfully", nil)
}

func (c *Controller) VerifyUniversity(e echo.Context) error {
	res, err := c.service.VerifyUniversity(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, res.Message, res)
}

func (c *Controller) UnverifyUniversity(e echo.Context) error {
	res, err := c.service.UnverifyUniversity(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, res.Message, res)
}

func (c *Controller) GetPublicKey(e echo.Context) error {
	res, err := c.service.GetPublicKey(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}
