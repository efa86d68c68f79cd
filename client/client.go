// Package client is a typed Go client for the Veritas REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/hemadri138/veritas-project/util"
	"github.com/hemadri138/veritas-project/util/values"
	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

var ErrNoSession = errors.New("client: login required")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("veritas: %d %s: %s", e.StatusCode, e.Status, e.Message)
}

type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	Source     string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithSource sets the X-Request-Source header sent with every request.
func WithSource(source string) Option {
	return func(c *Client) { c.Source = source }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		BaseURL:    u,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		Source:     values.DefaultRequestSource,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*Session, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := util.ValidateStruct(req); err != nil {
		return nil, errors.Wrap(err, util.ValidationMessage(err))
	}

	var resp model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/register", nil, nil, req, &resp); err != nil {
		return nil, err
	}
	return &Session{Token: resp.Token, User: resp.User}, nil
}

func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*Session, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := util.ValidateStruct(req); err != nil {
		return nil, errors.Wrap(err, util.ValidationMessage(err))
	}

	var resp model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", nil, nil, req, &resp); err != nil {
		return nil, err
	}
	return &Session{Token: resp.Token, User: resp.User}, nil
}

// Me fetches the profile of the session's user.
func (c *Client) Me(ctx context.Context, sess *Session) (*model.User, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}

	var resp model.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, sess, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListClaims(ctx context.Context, params model.ListClaimsParams) (*model.ClaimList, error) {
	q, err := query.Values(params)
	if err != nil {
		return nil, errors.Wrap(err, "encode query parameters")
	}

	var resp model.ClaimList
	if err := c.do(ctx, http.MethodGet, "/api/claims", q, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetClaim(ctx context.Context, claimID int64) (*model.ClaimDetail, error) {
	var resp model.ClaimDetail
	if err := c.do(ctx, http.MethodGet, claimPath(claimID), nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SubmitClaim(ctx context.Context, sess *Session, req model.CreateClaimRequest) (*model.Claim, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}
	if err := util.ValidateStruct(req); err != nil {
		return nil, errors.Wrap(err, util.ValidationMessage(err))
	}

	var resp model.Claim
	if err := c.do(ctx, http.MethodPost, "/api/claims", nil, sess, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListEvidence(ctx context.Context, claimID int64) ([]model.Evidence, error) {
	var resp []model.Evidence
	if err := c.do(ctx, http.MethodGet, claimPath(claimID)+"/evidence", nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) SubmitEvidence(ctx context.Context, sess *Session, claimID int64, req model.CreateEvidenceRequest) (*model.Evidence, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}
	if err := util.ValidateStruct(req); err != nil {
		return nil, errors.Wrap(err, util.ValidationMessage(err))
	}

	var resp model.Evidence
	if err := c.do(ctx, http.MethodPost, claimPath(claimID)+"/evidence", nil, sess, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func claimPath(claimID int64) string {
	return "/api/claims/" + strconv.FormatInt(claimID, 10)
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, sess *Session, body, v interface{}) error {
	u := c.BaseURL.JoinPath(path)
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Source != "" {
		req.Header.Set(values.HeaderRequestSource, c.Source)
	}
	if sess.Valid() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
		}
		return errors.Wrap(err, "decode response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Status: env.Status, Message: env.Message}
	}

	if v != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, v); err != nil {
			return errors.Wrap(err, "decode response data")
		}
	}
	return nil
}
