package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/azgeda96/secure-pass-vault/internal/config"
	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/internal/utils"
	"github.com/azgeda96/secure-pass-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout, so that a stalled server cannot
// hang the client UI indefinitely.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// SignUp implements [ServerAdapter]. It POSTs the account credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) SignUp(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("sign up parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// SignIn implements [ServerAdapter]. It POSTs the account credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) SignIn(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("sign in parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// ListCredentials implements [ServerAdapter]. It GETs /api/credentials and
// decodes the response into a [models.Credential] slice. Requires a valid
// bearer token.
func (h *httpServerAdapter) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	resp, err := h.authedRequest(ctx).Get("/api/credentials")
	if err != nil {
		return nil, fmt.Errorf("list credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.Credential
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode credentials response: %w", err)
	}

	return records, nil
}

// CreateCredential implements [ServerAdapter]. It POSTs the draft to
// POST /api/credentials and decodes the stored record from the response.
// Requires a valid bearer token.
func (h *httpServerAdapter) CreateCredential(ctx context.Context, draft models.CredentialDraft) (models.Credential, error) {
	var created models.Credential

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		SetResult(&created).
		Post("/api/credentials")
	if err != nil {
		return models.Credential{}, fmt.Errorf("create credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return created, nil
}

// UpdateCredential implements [ServerAdapter]. It PATCHes the record at
// PATCH /api/credentials/{id} and decodes the updated record from the
// response. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateCredential(ctx context.Context, id string, patch models.CredentialPatch) (models.Credential, error) {
	var updated models.Credential

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&updated).
		Patch("/api/credentials/" + id)
	if err != nil {
		return models.Credential{}, fmt.Errorf("update credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return updated, nil
}

// DeleteCredential implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/credentials/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteCredential(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/credentials/" + id)
	if err != nil {
		return fmt.Errorf("delete credential request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
