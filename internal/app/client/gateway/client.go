// Package gateway реализует HTTP клиент API: CRUD по коллекциям, переупорядочивание,
// вход и выход. Повторов нет, каждый вызов делает ровно один запрос.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"itemdesk/internal/domain/validation"
)

const (
	csrfHeader = "X-CSRF-Token"
	userAgent  = "Itemdesk-Client/1.0"
)

// Credentials хранит данные сессии, выданные при входе.
type Credentials struct {
	Token     string `json:"token"`
	CSRFToken string `json:"csrf_token"`
	UserID    int    `json:"user_id"`
}

type Client struct {
	http    *http.Client
	baseURL string
	log     *slog.Logger

	mu    sync.RWMutex
	creds Credentials
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.With("component", "gateway"),
	}
}

func (c *Client) SetCredentials(creds Credentials) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = creds
}

func (c *Client) Credentials() Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds
}

type errorBody struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  validation.Fields `json:"errors"`
}

// do выполняет запрос и раскладывает ответ в out (если out не nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	creds := c.Credentials()
	if creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}
	if creds.CSRFToken != "" && method != http.MethodGet {
		req.Header.Set(csrfHeader, creds.CSRFToken)
	}

	c.log.Debug("sending request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	c.log.Debug("response received", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: decode response: %w", ErrTransport, err)
		}
	}
	return nil
}

func decodeError(status int, data []byte) error {
	var eb errorBody
	decodeErr := json.Unmarshal(data, &eb)

	if status == http.StatusUnprocessableEntity {
		if decodeErr != nil {
			return fmt.Errorf("%w: undecodable validation response: %w", ErrTransport, decodeErr)
		}
		verr := validation.New(eb.Errors)
		if eb.Message != "" {
			verr.Message = eb.Message
		}
		return verr
	}

	return &StatusError{Code: status, Message: eb.Message}
}
