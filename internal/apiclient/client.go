package apiclient

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

	logrus "github.com/sirupsen/logrus"
)

// Pagination mirrors the envelope's pagination block. When a list endpoint
// returns a bare array the client synthesizes a single page.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Client talks to the org backend. All requests attach the bearer token; a
// 401 triggers a single refresh attempt before the call is retried, and a
// failed refresh fires OnSessionExpired after clearing both tokens.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	mu         sync.Mutex
	token      string
	refreshTok string

	// OnSessionExpired is called once when a refresh attempt fails. The CLI
	// uses it to tell the operator to log in again.
	OnSessionExpired func()
}

func New(baseURL, token, refreshTok string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		token:      token,
		refreshTok: refreshTok,
	}
}

// SetTokens replaces the stored token pair, e.g. after an explicit login.
func (c *Client) SetTokens(token, refreshTok string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.refreshTok = refreshTok
}

// Token returns the current access token.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

type loginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Login exchanges credentials for a token pair and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out loginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out, false); err != nil {
		return err
	}
	c.SetTokens(out.Token, out.RefreshToken)
	return nil
}

func (c *Client) refresh(ctx context.Context) error {
	c.mu.Lock()
	rt := c.refreshTok
	c.mu.Unlock()
	if rt == "" {
		return &APIError{StatusCode: http.StatusUnauthorized, Message: "session expired"}
	}

	var out loginResponse
	body := map[string]string{"refresh_token": rt}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, body, &out, false); err != nil {
		return err
	}
	c.SetTokens(out.Token, out.RefreshToken)
	return nil
}

// do performs one request. When allowRetry is set, a 401 response triggers a
// single token refresh followed by one retry; a failed refresh clears the
// token pair and invokes OnSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, params Params, body interface{}, out interface{}, allowRetry bool) error {
	resp, raw, err := c.send(ctx, method, path, params, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && allowRetry {
		logrus.Debug("got 401, attempting token refresh")
		if rerr := c.refresh(ctx); rerr != nil {
			c.SetTokens("", "")
			if c.OnSessionExpired != nil {
				c.OnSessionExpired()
			}
			return decodeError(resp.StatusCode, raw)
		}
		resp, raw, err = c.send(ctx, method, path, params, body)
		if err != nil {
			return err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, params Params, body interface{}) (*http.Response, []byte, error) {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + encodeQuery(params)
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, raw, nil
}

// sendRaw issues one request with a prebuilt non-JSON body, attaching the
// bearer token. The import upload and export download go through here.
func (c *Client) sendRaw(ctx context.Context, method, path, contentType string, body []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, raw, nil
}

// doRaw wraps sendRaw with the same one-shot 401 refresh-and-retry the JSON
// path gets. The body stays in memory so the retry can replay it.
func (c *Client) doRaw(ctx context.Context, method, path, contentType string, body []byte) ([]byte, error) {
	resp, raw, err := c.sendRaw(ctx, method, path, contentType, body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		logrus.Debug("got 401, attempting token refresh")
		if rerr := c.refresh(ctx); rerr != nil {
			c.SetTokens("", "")
			if c.OnSessionExpired != nil {
				c.OnSessionExpired()
			}
			return nil, decodeError(resp.StatusCode, raw)
		}
		resp, raw, err = c.sendRaw(ctx, method, path, contentType, body)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

func decodeError(status int, raw []byte) error {
	var payload struct {
		Message string       `json:"message"`
		Error   string       `json:"error"`
		Errors  []FieldError `json:"errors"`
	}
	_ = json.Unmarshal(raw, &payload)

	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}
	return &APIError{StatusCode: status, Message: msg, Fields: payload.Errors}
}

// listEnvelope is the `{data, pagination}` wrapper returned by list
// endpoints.
type listEnvelope[T any] struct {
	Data       []T         `json:"data"`
	Pagination *Pagination `json:"pagination"`
}

// getList fetches a page of records, normalizing the filter set first. When
// the envelope has no pagination block a single page is synthesized.
func getList[T any](ctx context.Context, c *Client, path string, raw Params) ([]T, Pagination, error) {
	var env listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, NormalizeParams(raw), nil, &env, true); err != nil {
		return nil, Pagination{}, err
	}
	if env.Data == nil {
		env.Data = []T{}
	}
	if env.Pagination == nil {
		env.Pagination = &Pagination{
			Page:       1,
			PageSize:   len(env.Data),
			TotalItems: len(env.Data),
			TotalPages: 1,
		}
	}
	return env.Data, *env.Pagination, nil
}

type objectEnvelope[T any] struct {
	Data T `json:"data"`
}

func getOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	var env objectEnvelope[T]
	err := c.do(ctx, http.MethodGet, path, nil, nil, &env, true)
	return env.Data, err
}

func create[T any](ctx context.Context, c *Client, path string, payload map[string]interface{}) (T, error) {
	var env objectEnvelope[T]
	err := c.do(ctx, http.MethodPost, path, nil, payload, &env, true)
	return env.Data, err
}

func update[T any](ctx context.Context, c *Client, path string, payload map[string]interface{}) (T, error) {
	var env objectEnvelope[T]
	err := c.do(ctx, http.MethodPut, path, nil, payload, &env, true)
	return env.Data, err
}

func remove(ctx context.Context, c *Client, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}
