package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker/v2"
	"github.com/studentcert/studentcert/internal/verification/dto"
	"github.com/studentcert/studentcert/pkg/errs"
	"github.com/studentcert/studentcert/pkg/httpclient"
)

type CertificateClientImpl struct {
	baseURL string
	cb      *gobreaker.CircuitBreaker[[]byte]
}

func CreateCertificateClient(baseURL string, cb *gobreaker.CircuitBreaker[[]byte]) CertificateClient {
	return &CertificateClientImpl{baseURL: baseURL, cb: cb}
}

func (c *CertificateClientImpl) GetCertificateByNumber(ctx context.Context, certificateNumber string) (res *dto.Certificate, err error) {
	body, err := c.cb.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s/certificates/%s", c.baseURL, certificateNumber),
			Method: "GET",
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
		})
		if err != nil {
			return nil, err
		}

		if statusCode == http.StatusNotFound {
			return nil, nil
		}

		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("certificate service returned status %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		return nil, errs.ErrUpstreamService
	}

	if body == nil {
		return nil, nil
	}

	var envelope struct {
		Data dto.Certificate `json:"data"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		return nil, errs.ErrUpstreamService
	}

	return &envelope.Data, nil
}
