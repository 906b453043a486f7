// Package store reads values from a realtime-database style key-value store over its REST interface.
//
// Every value lives at a path; a GET of https://<host><path>.json returns it as JSON.
// Values are fetched fresh on every call; nothing is cached.
package store

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Data type names, as the database's client libraries report them.
const (
	TypeInt     = "int"
	TypeFloat   = "float"
	TypeBoolean = "boolean"
	TypeString  = "string"
	TypeJSON    = "json"
	TypeArray   = "array"
	TypeNull    = "null"
)

var (
	ErrTypeMismatch = errors.New("data type mismatch")
	ErrPathNotExist = errors.New("path not exist")
	ErrNoHost       = errors.New("store: no host configured")
)

// maxBody caps how much of a response is read. Counters and error bodies are tiny.
const maxBody = 4096

// StatusError is a non-200 reply. Its text is the server's reason, or the status text if it gave none.
type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string { return e.Reason }

// Link is a network association the client can repair before a request. *wifi.Watcher satisfies it.
type Link interface {
	Reconnect() error
	MarkDown()
}

type Client struct {
	host string
	auth string
	http *http.Client
	link Link
}

// New returns a client for the database at host, authenticating with the legacy database secret auth.
// A nil hc gets a client with a 10s timeout.
func New(host, auth string, hc *http.Client) (*Client, error) {
	host = strings.TrimSuffix(strings.TrimPrefix(host, "https://"), "/")
	if host == "" {
		return nil, ErrNoHost
	}
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{host: host, auth: auth, http: hc}, nil
}

// ReconnectWiFi makes the client repair link before each request if it has dropped.
func (c *Client) ReconnectWiFi(link Link) {
	c.link = link
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := "https://" + c.host + path + ".json"
	if c.auth != "" {
		u += "?auth=" + url.QueryEscape(c.auth)
	}
	return u
}

// Get fetches the value at path. A JSON null is reported as ErrPathNotExist, with Result.Type set.
func (c *Client) Get(ctx context.Context, path string) (Result, error) {
	if c.link != nil {
		if err := c.link.Reconnect(); err != nil {
			return Result{}, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if c.link != nil {
			c.link.MarkDown()
		}
		return Result{}, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Result{}, transportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		reason := errorReason(body)
		if reason == "" {
			reason = strings.ToLower(http.StatusText(resp.StatusCode))
		}
		return Result{}, &StatusError{Code: resp.StatusCode, Reason: reason}
	}

	r, err := classify(body)
	if err != nil {
		return r, err
	}
	if r.Type == TypeNull {
		return r, ErrPathNotExist
	}
	return r, nil
}

// GetInt fetches the integer at path. Any other type is ErrTypeMismatch.
func (c *Client) GetInt(ctx context.Context, path string) (int64, error) {
	r, err := c.Get(ctx, path)
	if err != nil {
		return 0, err
	}
	if r.Type != TypeInt {
		return 0, ErrTypeMismatch
	}
	return r.Int, nil
}

// transportError drops the request URL from err. The URL carries the database secret, and the
// error text ends up on the display.
func transportError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
