// Package client habla con la API de patientor (usado por la CLI).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"patientor/internal/domain/diagnoses"
	"patientor/internal/domain/entries"
	"patientor/internal/domain/patients"
)

const DefaultTimeout = 10 * time.Second

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New valida baseURL y arma un Client con timeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	baseURL = strings.TrimSpace(baseURL)
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// HTTPError representa una respuesta no-2xx. Body es el texto plano que
// devuelve la API (p.ej. los issues de validación).
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// IsNotFound reporta si err es un 404 de la API.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusNotFound
}

func (c *Client) ListPatients(ctx context.Context) ([]patients.NonSensitivePatient, error) {
	var out []patients.NonSensitivePatient
	if err := c.doJSON(ctx, http.MethodGet, "/api/patients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPatient(ctx context.Context, id string) (patients.Patient, error) {
	var out patients.Patient
	if err := c.doJSON(ctx, http.MethodGet, "/api/patients/"+url.PathEscape(id), nil, &out); err != nil {
		return patients.Patient{}, err
	}
	return out, nil
}

func (c *Client) Diagnoses(ctx context.Context) ([]diagnoses.Diagnosis, error) {
	var out []diagnoses.Diagnosis
	if err := c.doJSON(ctx, http.MethodGet, "/api/diagnoses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddEntry manda el payload tal cual; la respuesta se decodifica con
// entries.Parse así el tipo concreto vuelve intacto.
func (c *Client) AddEntry(ctx context.Context, patientID string, payload json.RawMessage) (entries.Entry, error) {
	var raw json.RawMessage
	path := "/api/patients/" + url.PathEscape(patientID) + "/entries"
	if err := c.doJSON(ctx, http.MethodPost, path, payload, &raw); err != nil {
		return nil, err
	}
	return entries.Parse(raw)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("client: nil client")
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("client: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1MB max

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client: unmarshal json: %w", err)
	}
	return nil
}
