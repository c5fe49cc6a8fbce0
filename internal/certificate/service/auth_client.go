package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker/v2"
	"github.com/studentcert/studentcert/internal/certificate/dto"
	"github.com/studentcert/studentcert/pkg/errs"
	"github.com/studentcert/studentcert/pkg/httpclient"
)

type AuthClientImpl struct {
	baseURL string
	cb      *gobreaker.CircuitBreaker[[]byte]
}

func CreateAuthClient(baseURL string, cb *gobreaker.CircuitBreaker[[]byte]) AuthClient {
	return &AuthClientImpl{baseURL: baseURL, cb: cb}
}

func (c *AuthClientImpl) GetUserByEmail(ctx context.Context, email string) (res dto.UserInfo, err error) {
	return c.fetch(fmt.Sprintf("%s/api/users/email/%s", c.baseURL, email))
}

func (c *AuthClientImpl) GetUserByID(ctx context.Context, id int64) (res dto.UserInfo, err error) {
	return c.fetch(fmt.Sprintf("%s/api/users/%d", c.baseURL, id))
}

func (c *AuthClientImpl) fetch(url string) (res dto.UserInfo, err error) {
	body, err := c.cb.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(httpclient.HttpRequest{
			URL:    url,
			Method: "GET",
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
		})
		if err != nil {
			return nil, err
		}

		if statusCode == http.StatusNotFound {
			return nil, errs.ErrUserNotFound
		}

		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("auth service returned status %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		return
	}

	var envelope struct {
		Data dto.UserInfo `json:"data"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		return res, errs.ErrUpstreamService
	}

	return envelope.Data, nil
}
