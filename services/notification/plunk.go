package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/PrimeHarvest/PrimeHarvest-Backend/utils"
)

type Plunk struct {
	HttpClient *http.Client
	Config     *utils.Config
}

type EmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type TemplatedEmailRequest struct {
	To         string         `json:"to"`
	TemplateID string         `json:"template"`
	Data       map[string]any `json:"data"`
}

func NewPlunk(config *utils.Config) *Plunk {
	return &Plunk{
		HttpClient: http.DefaultClient,
		Config:     config,
	}
}

func (s *Plunk) makeRequest(method, endpoint string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, s.Config.PlunkBaseUrl+endpoint, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.Config.PlunkApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.New(string(respBody))
	}

	return respBody, nil
}

func (s *Plunk) SendEmail(req EmailRequest) error {
	_, err := s.makeRequest(http.MethodPost, "/v1/send", req)
	return err
}

func (s *Plunk) SendTemplatedEmail(req TemplatedEmailRequest) error {
	_, err := s.makeRequest(http.MethodPost, "/v1/send", req)
	return err
}
