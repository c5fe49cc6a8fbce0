package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	authdomain "github.com/studentcert/studentcert/internal/auth/domain"
	"github.com/studentcert/studentcert/internal/certificate/dto"
	"github.com/studentcert/studentcert/internal/certificate/service"
	"github.com/studentcert/studentcert/internal/middleware"
	"github.com/studentcert/studentcert/pkg/errs"
	"github.com/studentcert/studentcert/pkg/response"
	pkgvalidator "github.com/studentcert/studentcert/pkg/validator"
)

type Controller struct {
	service     service.CertificateService
	fileService service.FileService
	pdfService  service.PdfService
	jwtSecret   string
}

func CreateController(e *echo.Group, svc service.CertificateService, fileSvc service.FileService, pdfSvc service.PdfService, jwtSecret string) {
	c := Controller{service: svc, fileService: fileSvc, pdfService: pdfSvc, jwtSecret: jwtSecret}

	issuerOnly := middleware.RequireRole(jwtSecret, authdomain.RoleUniversity, authdomain.RoleAdmin)

	e.POST("/certificates", c.IssueCertificate, issuerOnly)
	e.POST("/certificates/batch-issue", c.BatchIssueCertificates, issuerOnly)
	e.GET("/certificates", c.ListCertificates)
	e.GET("/certificates/:certificateNumber", c.GetCertificate)
	e.PUT("/certificates", c.UpdateCertificate, issuerOnly)
	e.POST("/certificates/revoke", c.RevokeCertificate, issuerOnly)
	e.POST("/certificates/upload", c.UploadFile, issuerOnly)
	e.GET("/certificates/:id/pdf", c.GetCertificatePdf)
}

func (c *Controller) IssueCertificate(e echo.Context) error {
	payload := dto.CertificateIssueRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "IssueCertificate").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return pkgvalidator.WriteValidationError(e, err)
	}

	claims, ok := middleware.ExtractTokenClaims(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	res, err := c.service.IssueCertificate(e.Request().Context(), payload, claims.UserID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Certificate issued successfully", res)
}

func (c *Controller) BatchIssueCertificates(e echo.Context) error {
	payload := dto.BatchIssueRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "BatchIssueCertificates").Msg("")
	}

	if len(payload.Certificates) == 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	claims, ok := middleware.ExtractTokenClaims(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	res, err := c.service.BatchIssueCertificates(e.Request().Context(), payload, claims.UserID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Batch issuance completed", res)
}

// ListCertificates narrows the result set to the caller's own certificates
// when a student token is presented; otherwise it returns everything.
func (c *Controller) ListCertificates(e echo.Context) error {
	status := e.QueryParam("status")

	claims, ok := middleware.ParseOptionalToken(e, c.jwtSecret)
	if ok && strings.EqualFold(claims.Role, authdomain.RoleStudent) {
		res, err := c.service.ListCertificatesByStudentEmail(e.Request().Context(), claims.Email, status)
		if err != nil {
			return response.WriteErrorResponse(e, err, nil)
		}
		return response.WriteSuccessResponse(e, "", res)
	}

	res, err := c.service.ListCertificates(e.Request().Context(), status)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}

func (c *Controller) GetCertificate(e echo.Context) error {
	res, err := c.service.GetCertificateByCertificateNumber(e.Request().Context(), e.Param("certificateNumber"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", res)
}

func (c *Controller) UpdateCertificate(e echo.Context) error {
	payload := dto.CertificateUpdateRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateCertificate").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return pkgvalidator.WriteValidationError(e, err)
	}

	res, err := c.service.UpdateCertificate(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Certificate updated successfully", res)
}

func (c *Controller) RevokeCertificate(e echo.Context) error {
	payload := dto.CertificateRevocationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "RevokeCertificate").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return pkgvalidator.WriteValidationError(e, err)
	}

	if err := c.service.RevokeCertificate(e.Request().Context(), payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Certificate revoked successfully", nil)
}

func (c *Controller) UploadFile(e echo.Context) error {
	file, err := e.FormFile("file")
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	res, err := c.fileService.UploadFile(file, e.FormValue("type"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "File uploaded successfully", res)
}

func (c *Controller) GetCertificatePdf(e echo.Context) error {
	certificateID := e.Param("id")

	data, filename, err := c.pdfService.GetPdf(certificateID)
	if err != nil {
		if _, genErr := c.pdfService.GenerateCertificatePdf(e.Request().Context(), certificateID); genErr != nil {
			return response.WriteErrorResponse(e, genErr, nil)
		}
		data, filename, err = c.pdfService.GetPdf(certificateID)
		if err != nil {
			return response.WriteErrorResponse(e, err, nil)
		}
	}

	e.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	return e.Blob(http.StatusOK, "application/pdf", data)
}
