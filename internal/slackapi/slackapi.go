// Package slackapi provides a limited implementation of the Slack Web API
// sufficient to archive the contents of a workspace: authentication check,
// conversation, membership and history listing, and the user directory.
package slackapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefBaseURL is the base location of the Slack Web API.
const DefBaseURL = "https://slack.com/api"

// Client is an authenticated Slack Web API client.  Zero value is not
// usable, use New.
type Client struct {
	cl      *http.Client
	baseURL string
	token   string
}

// Option is the signature of a Client option-setting function.
type Option func(*Client)

// WithHTTPClient sets the http.Client to use for the API calls.  If not
// given, http.DefaultClient is used.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithBaseURL overrides the API base URL.  Mostly useful for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// New creates a new Client that authenticates with the given token.
func New(token string, opt ...Option) *Client {
	c := &Client{
		cl:      http.DefaultClient,
		baseURL: DefBaseURL,
		token:   token,
	}
	for _, fn := range opt {
		fn(c)
	}
	return c
}

// StatusError is the transport failure, returned when the server responds
// with a status code outside of the 2xx range.  The response body is not
// inspected in this case.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server status: %s", e.Status)
}

// APIError is the API-level failure: the endpoint returned ok=false in an
// otherwise well-formed response.  Reason carries the value of the "error"
// field for diagnostics.
type APIError struct {
	Reason string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("slack api error: %s", e.Reason)
}

// ResponseMetadata is the trailer of a paginated response.  An empty
// NextCursor means there are no more pages.
type ResponseMetadata struct {
	NextCursor string `json:"next_cursor"`
}

// BaseResponse is the envelope common to all Slack Web API responses.  It is
// embedded in every per-endpoint response type.
type BaseResponse struct {
	Ok               bool             `json:"ok"`
	Error            string           `json:"error,omitempty"`
	ResponseMetadata ResponseMetadata `json:"response_metadata,omitempty"`
}

// IsOK reports whether the API call succeeded.
func (r BaseResponse) IsOK() bool { return r.Ok }

// Err returns an *APIError if the API call failed, nil otherwise.  The
// client itself never calls it, checking the success flag is the caller's
// responsibility.
func (r BaseResponse) Err() error {
	if r.Ok {
		return nil
	}
	return &APIError{Reason: r.Error}
}

// NextCursor returns the pagination cursor for the next page.
func (r BaseResponse) NextCursor() string { return r.ResponseMetadata.NextCursor }

// get calls the endpoint with the form values in the query string and
// decodes the JSON response into resp.
func (c *Client) get(ctx context.Context, endpoint string, form url.Values, resp any) error {
	if form == nil {
		form = make(url.Values)
	}
	form.Set("token", c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+form.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, resp)
}

// postForm calls the endpoint with the form-encoded values in the request
// body and decodes the JSON response into resp.
func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values, resp any) error {
	if form == nil {
		form = make(url.Values)
	}
	form.Set("token", c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, resp)
}

func (c *Client) do(req *http.Request, resp any) error {
	r, err := c.cl.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode < http.StatusOK || http.StatusMultipleChoices <= r.StatusCode {
		return &StatusError{Code: r.StatusCode, Status: r.Status}
	}
	if err := json.NewDecoder(r.Body).Decode(resp); err != nil {
		return fmt.Errorf("%s: decode: %w", req.URL.Path, err)
	}
	return nil
}
