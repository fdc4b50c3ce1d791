package api

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
)

const (
	// DefaultBaseURL is the production Detail API endpoint.
	DefaultBaseURL = "https://api.detail.dev"
	// TokenPrefix is the required prefix of Detail API tokens.
	TokenPrefix = "dtl_"

	requestTimeout = 30 * time.Second
)

// realClient talks to the Detail API over HTTP.
type realClient struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
}

// NewClientParams contains parameters for creating a new Client instance.
type NewClientParams struct {
	// BaseURL overrides the API endpoint; empty means DefaultBaseURL.
	BaseURL string
	// Token is the bearer token, including the dtl_ prefix.
	Token string
	// Version is the CLI version reported in the User-Agent header.
	Version string
}

// NewClient creates a new Client instance.
func NewClient(params NewClientParams) (Client, error) {
	if params.Token != "" && !strings.HasPrefix(params.Token, TokenPrefix) {
		return nil, fmt.Errorf("%w: token should start with %q", ErrInvalidToken, TokenPrefix)
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &realClient{
		baseURL:   baseURL,
		token:     params.Token,
		userAgent: fmt.Sprintf("detail-cli/%s", params.Version),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// BaseURL returns the API endpoint this client talks to.
func (c *realClient) BaseURL() string {
	return c.baseURL
}

// CurrentUser fetches the authenticated user.
func (c *realClient) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/v1/user", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListRepos fetches one page of the accessible-repository listing.
func (c *realClient) ListRepos(ctx context.Context, limit, offset int) (ReposPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var page ReposPage
	if err := c.do(ctx, http.MethodGet, "/v1/repos", query, nil, &page); err != nil {
		return ReposPage{}, fmt.Errorf("failed to list repositories: %w", err)
	}
	return page, nil
}

// ListBugs fetches one page of bugs for a repository, filtered by status.
func (c *realClient) ListBugs(
	ctx context.Context,
	repoID RepoID,
	status CloseState,
	limit, offset int,
) (BugsPage, error) {
	query := url.Values{}
	query.Set("repoId", repoID.String())
	query.Set("status", string(status))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var page BugsPage
	if err := c.do(ctx, http.MethodGet, "/v1/bugs", query, nil, &page); err != nil {
		return BugsPage{}, fmt.Errorf("failed to list bugs: %w", err)
	}
	return page, nil
}

// GetBug fetches a single bug.
func (c *realClient) GetBug(ctx context.Context, bugID BugID) (*Bug, error) {
	var bug Bug
	if err := c.do(ctx, http.MethodGet, "/v1/bugs/"+url.PathEscape(bugID.String()), nil, nil, &bug); err != nil {
		return nil, fmt.Errorf("failed to fetch bug %s: %w", bugID, err)
	}
	return &bug, nil
}

// CloseBug closes a bug with the given state, reason and notes.
func (c *realClient) CloseBug(ctx context.Context, bugID BugID, req CloseRequest) (*BugClose, error) {
	path := "/v1/bugs/" + url.PathEscape(bugID.String()) + "/close"

	var result BugClose
	if err := c.do(ctx, http.MethodPost, path, nil, req, &result); err != nil {
		return nil, fmt.Errorf("failed to close bug %s: %w", bugID, err)
	}
	return &result, nil
}

// apiError is the error body returned by the service.
type apiError struct {
	Error string `json:"error"`
}

// do issues one API request and decodes the JSON response into out.
func (c *realClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// handleErrorResponse maps API error responses to package errors.
func (c *realClient) handleErrorResponse(resp *http.Response) error {
	var body apiError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		if body.Error != "" {
			return fmt.Errorf("%w: %s", ErrNotFound, body.Error)
		}
		return ErrNotFound
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return ErrRateLimited
		}
	}

	if body.Error != "" {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("API error (status %d)", resp.StatusCode)
}
