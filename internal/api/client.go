// Package api is the HTTP client for the Charmss admin backend. It attaches
// bearer credentials, validates response shapes at the boundary, and maps
// backend failures onto the shared sentinel errors.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/charmss/admin-client/internal/errs"
	"github.com/charmss/admin-client/internal/model"
)

const maxBodyBytes = 4 << 20

// CredentialSource supplies the current bearer credential, "" when absent.
type CredentialSource func() string

// Config controls how the client talks to the backend. SendEmptyBearer
// preserves the backend contract of always sending the Authorization header,
// with an empty token before login; set it false to omit the header instead.
type Config struct {
	BaseURL         string
	SendEmptyBearer bool
	HTTPClient      *http.Client
}

// Client is a thin typed wrapper over the backend's REST surface.
type Client struct {
	base            *url.URL
	hc              *http.Client
	cred            CredentialSource
	sendEmptyBearer bool
	validate        *validator.Validate
	log             *zap.Logger
}

// New constructs a Client. cred may be nil for an always-unauthenticated
// client.
func New(cfg Config, cred CredentialSource, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: empty base URL")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("api: parse base URL: %w", err)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		base:            base,
		hc:              hc,
		cred:            cred,
		sendEmptyBearer: cfg.SendEmptyBearer,
		validate:        validator.New(),
		log:             log,
	}, nil
}

// StatusError is a non-2xx backend response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.Code, e.Body)
}

func (c *Client) setAuth(req *http.Request) {
	cred := ""
	if c.cred != nil {
		cred = c.cred()
	}
	if cred == "" && !c.sendEmptyBearer {
		return
	}
	req.Header.Set("Authorization", "Bearer "+cred)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if rid, err := uuid.NewV4(); err == nil {
		req.Header.Set("X-Request-ID", rid.String())
	}
	c.setAuth(req)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	c.log.Info("http",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("dur", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %w", method, path, errs.ErrUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, errs.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}

// ValidateCallback exchanges an external user ID and provider for a
// credential and user. Network and HTTP failures propagate to the caller; a
// 200 response missing either field is reported as ErrInvalidCallback and
// the caller must not populate the session.
func (c *Client) ValidateCallback(ctx context.Context, externalUserID, provider, role string) (string, *model.User, error) {
	if role == "" {
		role = string(model.RoleAdmin)
	}
	q := url.Values{}
	q.Set("userId", externalUserID)
	q.Set("provider", provider)
	q.Set("role", role)

	var resp callbackResponse
	if err := c.do(ctx, http.MethodGet, "auth/provider/validate-callback", q, &resp); err != nil {
		c.log.Error("callback validation failed", zap.String("provider", provider), zap.Error(err))
		return "", nil, err
	}
	if resp.JWT == "" || resp.User == nil {
		c.log.Error("callback response missing jwt or user", zap.String("provider", provider))
		return "", nil, errs.ErrInvalidCallback
	}
	return resp.JWT, resp.User, nil
}

// ListPerformers fetches one page of raw performer DTOs plus the server
// meta block.
func (c *Client) ListPerformers(ctx context.Context, p ListParams) ([]PerformerDTO, ListMeta, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.OrderBy != "" {
		q.Set("orderBy", p.OrderBy)
		q.Set("order", string(p.Order))
	}
	if p.Where != "" {
		q.Set("where", p.Where)
	}
	if p.Status != nil {
		q.Set("status", strconv.Itoa(*p.Status))
	}

	var resp performerListResponse
	if err := c.do(ctx, http.MethodGet, "api/performers", q, &resp); err != nil {
		return nil, ListMeta{}, err
	}
	if err := c.validate.Struct(&resp); err != nil {
		return nil, ListMeta{}, fmt.Errorf("performer list: invalid shape: %w", err)
	}
	return resp.Data, resp.Meta, nil
}

// PerformerProfile fetches the detail view for a single performer.
func (c *Client) PerformerProfile(ctx context.Context, id string) (*PerformerProfileDTO, error) {
	var dto PerformerProfileDTO
	if err := c.do(ctx, http.MethodGet, "api/performers/"+id+"/profile", nil, &dto); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&dto); err != nil {
		return nil, fmt.Errorf("performer profile: invalid shape: %w", err)
	}
	return &dto, nil
}

// PerformerAlbums fetches the albums and assets tied to a performer
// profile.
func (c *Client) PerformerAlbums(ctx context.Context, performerProfileID string) ([]AlbumDTO, error) {
	var resp albumListResponse
	if err := c.do(ctx, http.MethodGet, "api/album/performer/"+performerProfileID, nil, &resp); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&resp); err != nil {
		return nil, fmt.Errorf("album list: invalid shape: %w", err)
	}
	return resp.Data, nil
}

// RevokeGrant asks the backend to revoke an external OAuth grant. Used
// best-effort during logout.
func (c *Client) RevokeGrant(ctx context.Context, provider, userID string) error {
	q := url.Values{}
	q.Set("userId", userID)
	return c.do(ctx, http.MethodPost, "auth/"+provider+"/revoke", q, nil)
}
