package goapkmirror

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// DownloadTo streams the binary at rawURL into dest in 8 KiB chunks. The
// status is inspected before any byte is written; a partial file from a
// failed transfer is left in place and never resumed.
func (c *Client) DownloadTo(rawURL, dest string) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	res, err := c.binary.Do(req)
	if err != nil {
		logError.Println("Error fetching binary:", rawURL, "->", err)
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		logError.Println("Received non-success status code:", res.StatusCode, "for URL:", rawURL)
		return fmt.Errorf("received non-success status code: %d", res.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	buf := make([]byte, chunkSize)
	_, copyErr := io.CopyBuffer(out, res.Body, buf)
	closeErr := out.Close()
	if copyErr != nil {
		return copyErr
	}
	return closeErr
}
