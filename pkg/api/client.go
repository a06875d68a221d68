// Package api is the stateless request layer against the diary backend.
// It translates engine intents into HTTP calls and classifies failures
// into the package's error taxonomy; it holds no session state of its
// own — the token is passed in on every authenticated call.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Ikhwanand/diary-tui/pkg/entry"
)

const maxBodyBytes = 1 << 20

// Client issues requests against a single backend base URL.
type Client struct {
	base string
	http *http.Client
}

// New returns a client rooted at baseURL. The timeout bounds each round
// trip; there is no per-call cancellation beyond it.
func New(baseURL string, timeout time.Duration) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
	}
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, body, err := c.postForm(ctx, "login/", "", form)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrInvalidCredentials, strings.TrimSpace(string(body)))
	}
	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil || lr.Key == "" {
		return "", fmt.Errorf("%w: login body", ErrMalformedResponse)
	}
	return lr.Key, nil
}

// Register creates a new account. The backend expects the password twice.
func (c *Client) Register(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password1", password)
	form.Set("password2", password)

	resp, body, err := c.postForm(ctx, "register/", "", form)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return &RegistrationError{Reason: strings.TrimSpace(string(body))}
	}
	return nil
}

// List fetches all entries for the token's user, in backend order.
func (c *Client) List(ctx context.Context, token string) ([]*entry.Entry, error) {
	resp, body, err := c.do(ctx, http.MethodGet, "diaries/", token, "", nil)
	if err != nil {
		return nil, err
	}
	if err := c.checkAuthed(resp, body); err != nil {
		return nil, err
	}
	var wire []wireEntry
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: entry list", ErrMalformedResponse)
	}
	entries := make([]*entry.Entry, 0, len(wire))
	for i := range wire {
		entries = append(entries, wire[i].toEntry())
	}
	return entries, nil
}

// Get fetches a single entry by id.
func (c *Client) Get(ctx context.Context, token string, id int64) (*entry.Entry, error) {
	resp, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("diaries/%d/", id), token, "", nil)
	if err != nil {
		return nil, err
	}
	if err := c.checkAuthed(resp, body); err != nil {
		return nil, err
	}
	return decodeEntry(body)
}

// Create submits a new entry, as multipart when an attachment is
// present. It is the one non-idempotent call in this API: the caller
// must not auto-retry it.
func (c *Client) Create(ctx context.Context, token, title, content string, att *entry.PendingAttachment) (*entry.Entry, error) {
	var resp *http.Response
	var body []byte
	var err error
	if att == nil {
		form := url.Values{}
		form.Set("title", title)
		form.Set("content", content)
		resp, body, err = c.postForm(ctx, "diaries/", token, form)
	} else {
		resp, body, err = c.postMultipart(ctx, "diaries/", token, title, content, att)
	}
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, validationError(body)
	}
	return decodeEntry(body)
}

// Update replaces title and content of an existing entry.
func (c *Client) Update(ctx context.Context, token string, id int64, title, content string) (*entry.Entry, error) {
	form := url.Values{}
	form.Set("title", title)
	form.Set("content", content)

	resp, body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("diaries/%d/", id), token,
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return decodeEntry(body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, validationError(body)
	}
}

// Delete removes an entry. Only 204 counts as success.
func (c *Client) Delete(ctx context.Context, token string, id int64) error {
	resp, body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("diaries/%d/", id), token, "", nil)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &DeleteError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
}

func (c *Client) postForm(ctx context.Context, path, token string, form url.Values) (*http.Response, []byte, error) {
	return c.do(ctx, http.MethodPost, path, token,
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

func (c *Client) postMultipart(ctx context.Context, path, token, title, content string, att *entry.PendingAttachment) (*http.Response, []byte, error) {
	f, err := os.Open(att.LocalPath)
	if err != nil {
		// The picker verified readability at selection time; the file can
		// still disappear before submission.
		return nil, nil, fmt.Errorf("attachment unreadable: %w", err)
	}
	defer f.Close()

	var buf strings.Builder
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("title", title); err != nil {
		return nil, nil, err
	}
	if err := w.WriteField("content", content); err != nil {
		return nil, nil, err
	}
	part, err := w.CreateFormFile("file", att.DisplayName)
	if err != nil {
		return nil, nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, nil, fmt.Errorf("attachment unreadable: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, nil, err
	}
	return c.do(ctx, http.MethodPost, path, token, w.FormDataContentType(), strings.NewReader(buf.String()))
}

func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, data, nil
}

func (c *Client) checkAuthed(resp *http.Response, body []byte) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d: %s", ErrMalformedResponse, resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func decodeEntry(body []byte) (*entry.Entry, error) {
	var w wireEntry
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("%w: entry body", ErrMalformedResponse)
	}
	return w.toEntry(), nil
}

func validationError(body []byte) error {
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return &ValidationError{Raw: strings.TrimSpace(string(body))}
}
