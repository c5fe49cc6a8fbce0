package controller

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/verification/dto"
	"github.com/studentcert/studentcert/internal/verification/service"
	"github.com/studentcert/studentcert/pkg/response"
	pkgvalidator "github.com/studentcert/studentcert/pkg/validator"
)

type Controller struct {
	service service.VerificationService
}

func CreateController(e *echo.Group, svc service.VerificationService) {
	c := Controller{service: svc}

	e.POST("/verify", c.VerifyCertificate)
	e.GET("/verify/:certificateNumber", c.VerifyCertificateByParam)
	e.POST("/verify/bulk", c.BulkVerifyCertificates)
}

func (c *Controller) VerifyCertificate(e echo.Context) error {
	payload := dto.VerificationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "VerifyCertificate").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return pkgvalidator.WriteValidationError(e, err)
	}

	res, err := c.service.VerifyCertificate(e.Request().Context(), payload.CertificateNumber)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, res.Reason, res)
}

func (c *Controller) VerifyCertificateByParam(e echo.Context) error {
	res, err := c.service.VerifyCertificate(e.Request().Context(), e.Param("certificateNumber"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, res.Reason, res)
}

func (c *Controller) BulkVerifyCertificates(e echo.Context) error {
	payload := dto.BulkVerificationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "BulkVerifyCertificates").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return pkgvalidator.WriteValidationError(e, err)
	}

	res, err := c.service.BulkVerifyCertificates(e.Request().Context(), payload.CertificateNumbers)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	message := fmt.Sprintf("Bulk verification completed. %d/%d certificates are valid.", res.ValidCertificates, res.TotalRequested)
	return response.WriteSuccessResponse(e, message, res)
}
