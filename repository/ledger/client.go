// Package ledger is the HTTP client for the ledger backend REST API. Every
// page of the console talks to the backend through Client.do, which attaches
// bearer auth and normalizes transport, HTTP and decode failures into
// *APIError so callers share one error-display path.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/algobasket/hissabbook-admin/util/httpx"
)

type Client struct {
	base string
	hc   *http.Client
	log  *slog.Logger
}

func New(base string, hc *http.Client, log *slog.Logger) *Client {
	if hc == nil {
		hc = httpx.Client()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{base: strings.TrimRight(base, "/"), hc: hc, log: log}
}

func (c *Client) do(ctx context.Context, token, method, path string, q url.Values, body, out any) error {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindDecode, Message: "could not encode request body", Err: err}
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("backend unreachable", "method", method, "path", path, "err", err)
		return &APIError{Kind: KindTransport, Message: "backend unreachable: " + err.Error(), Err: err}
	}
	defer resp.Body.Close()

	// Body is always drained fully before any verdict, so the error message
	// from the backend is never lost to a half-read connection.
	raw, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(raw)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.log.Warn("backend error", "method", method, "path", path, "status", resp.StatusCode, "msg", msg)
		return &APIError{Kind: KindHTTP, Message: msg, Status: resp.StatusCode}
	}

	if readErr != nil {
		return &APIError{Kind: KindTransport, Message: "reading response: " + readErr.Error(), Err: readErr}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Kind: KindDecode, Message: "unexpected response from backend", Err: err}
	}
	return nil
}

// errorMessage pulls a server-supplied message out of an error body,
// best-effort: {"message": ...} first, then {"error": ...}.
func errorMessage(raw []byte) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
