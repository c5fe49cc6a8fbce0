package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker/v2"
	"github.com/studentcert/studentcert/pkg/httpclient"
)

type UniversityClientImpl struct {
	baseURL string
	cb      *gobreaker.CircuitBreaker[[]byte]
}

func CreateUniversityClient(baseURL string, cb *gobreaker.CircuitBreaker[[]byte]) UniversityClient {
	return &UniversityClientImpl{baseURL: baseURL, cb: cb}
}

func (c *UniversityClientImpl) RegisterUniversity(ctx context.Context, uid, name, email, address, phone string) error {
	body, err := json.Marshal(map[string]string{
		"universityId":   uid,
		"universityName": name,
		"email":          email,
		"address":        address,
		"phone":          phone,
	})
	if err != nil {
		return err
	}

	return c.send("POST", fmt.Sprintf("%s/universities", c.baseURL), body, http.StatusCreated)
}

func (c *UniversityClientImpl) VerifyUniversity(ctx context.Context, uid string) error {
	return c.send("POST", fmt.Sprintf("%s/universities/%s/verify", c.baseURL, uid), nil, http.StatusOK)
}

func (c *UniversityClientImpl) UnverifyUniversity(ctx context.Context, uid string) error {
	return c.send("POST", fmt.Sprintf("%s/universities/%s/unverify", c.baseURL, uid), nil, http.StatusOK)
}

func (c *UniversityClientImpl) UpdateUniversity(ctx context.Context, uid string, name, email *string) error {
	payload := make(map[string]string)
	if name != nil {
		payload["universityName"] = *name
	}
	if email != nil {
		payload["email"] = *email
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return c.send("PUT", fmt.Sprintf("%s/universities/%s", c.baseURL, uid), body, http.StatusOK)
}

func (c *UniversityClientImpl) DeleteUniversity(ctx context.Context, uid string) error {
	return c.send("DELETE", fmt.Sprintf("%s/universities/%s", c.baseURL, uid), nil, http.StatusOK)
}

func (c *UniversityClientImpl) send(method, url string, body []byte, wantStatus int) error {
	_, err := c.cb.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(httpclient.HttpRequest{
			URL:    url,
			Method: method,
			Body:   body,
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
		})
		if err != nil {
			return nil, err
		}

		if statusCode != wantStatus {
			return nil, fmt.Errorf("university service returned status %d: %s", statusCode, extractMessage(respBody))
		}

		return respBody, nil
	})

	return err
}

func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Message == "" {
		return string(body)
	}
	return envelope.Message
}
