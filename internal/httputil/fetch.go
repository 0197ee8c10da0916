// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil holds the HTTP plumbing shared by document loaders.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetch issues a single GET and returns the response body together with the
// Content-Type header. There are no retries; transport errors come back
// untouched and any non-200 status becomes an error. The caller closes the
// body.
func Fetch(ctx context.Context, client *http.Client, url, accept, userAgent string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}
