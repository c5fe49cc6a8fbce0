package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/certificate/dto"
	"github.com/studentcert/studentcert/internal/certificate/repository"
	"github.com/studentcert/studentcert/pkg/errs"
)

const certificateTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Georgia, serif; text-align: center; padding: 60px; }
  .frame { border: 6px double #1a3c6e; padding: 50px; }
  h1 { color: #1a3c6e; letter-spacing: 2px; }
  .name { font-size: 32px; margin: 20px 0; }
  .course { font-size: 22px; font-style: italic; }
  .meta { margin-top: 40px; font-size: 14px; color: #555; }
</style>
</head>
<body>
<div class="frame">
  <h1>CERTIFICATE OF COMPLETION</h1>
  <p>This is to certify that</p>
  <div class="name">{{.StudentName}}</div>
  <p>has successfully completed</p>
  <div class="course">{{.CourseName}}{{if .Specialization}} ({{.Specialization}}){{end}}</div>
  <p>with grade <strong>{{.Grade}}</strong>{{if .Cgpa}} and CGPA <strong>{{.Cgpa}}</strong>{{end}}</p>
  <div class="meta">
    <p>Certificate Number: {{.CertificateNumber}}</p>
    <p>Issue Date: {{.IssueDate}} &middot; Verification Code: {{.VerificationCode}}</p>
  </div>
</div>
</body>
</html>`

type PdfServiceImpl struct {
	repo   repository.CertificateRepository
	pdfDir string
	tmpl   *template.Template
}

func CreatePdfService(repo repository.CertificateRepository, pdfDir string) PdfService {
	return &PdfServiceImpl{
		repo:   repo,
		pdfDir: pdfDir,
		tmpl:   template.Must(template.New("certificate").Parse(certificateTemplate)),
	}
}

func (s *PdfServiceImpl) GenerateCertificatePdf(ctx context.Context, certificateID string) (path string, err error) {
	cert, err := s.repo.GetByID(ctx, certificateID)
	if err != nil {
		return
	}
	if cert.ID == "" {
		return "", errs.ErrCertificateNotFound
	}

	var rendered bytes.Buffer
	if err = s.tmpl.Execute(&rendered, dto.CertificateResponse{
		CertificateNumber: cert.CertificateNumber,
		StudentName:       cert.StudentName,
		CourseName:        cert.CourseName,
		Specialization:    cert.Specialization,
		Grade:             cert.Grade,
		Cgpa:              cert.Cgpa,
		IssueDate:         cert.IssueDate,
		VerificationCode:  cert.VerificationCode,
	}); err != nil {
		log.Error().Err(err).Str("component", "GenerateCertificatePdf").Msg("template render failed")
		return "", errs.ErrInternalServer
	}

	pdfBytes, err := renderPdf(ctx, rendered.String())
	if err != nil {
		log.Error().Err(err).Str("component", "GenerateCertificatePdf").Msg("pdf render failed")
		return "", errs.ErrInternalServer
	}

	if err = os.MkdirAll(s.pdfDir, 0o755); err != nil {
		return "", errs.ErrInternalServer
	}

	path = filepath.Join(s.pdfDir, fmt.Sprintf("certificate_%s_%d.pdf", cert.ID, time.Now().UnixMilli()))
	if err = os.WriteFile(path, pdfBytes, 0o644); err != nil {
		log.Error().Err(err).Str("component", "GenerateCertificatePdf").Msg("failed to write pdf")
		return "", errs.ErrInternalServer
	}

	return path, nil
}

// GetPdf returns the most recently generated file for the certificate.
func (s *PdfServiceImpl) GetPdf(certificateID string) (data []byte, filename string, err error) {
	matches, err := filepath.Glob(filepath.Join(s.pdfDir, fmt.Sprintf("certificate_%s_*.pdf", certificateID)))
	if err != nil || len(matches) == 0 {
		return nil, "", errs.ErrCertificateNotFound
	}

	sort.Strings(matches)
	latest := matches[len(matches)-1]

	data, err = os.ReadFile(latest)
	if err != nil {
		return nil, "", errs.ErrInternalServer
	}

	return data, filepath.Base(latest), nil
}

// CleanUpTempFiles deletes generated PDFs older than 24 hours.
func (s *PdfServiceImpl) CleanUpTempFiles() {
	entries, err := os.ReadDir(s.pdfDir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.pdfDir, entry.Name())); err != nil {
				log.Error().Err(err).Str("component", "CleanUpTempFiles").Str("file", entry.Name()).Msg("failed to delete pdf")
				continue
			}
			log.Info().Str("component", "CleanUpTempFiles").Str("file", entry.Name()).Msg("deleted expired pdf")
		}
	}
}

func renderPdf(ctx context.Context, htmlContent string) ([]byte, error) {
	browserCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuffer, nil
}
