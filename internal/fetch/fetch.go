// Package fetch downloads provisioning artifacts over HTTP and unpacks
// embeddable archives.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pyembed/pyembed/internal/messages"
)

const userAgent = "pyembed"

var httpClient = &http.Client{Timeout: 5 * time.Minute}

// DownloadFile performs a single GET of url and writes the body to dest.
// The body is streamed to a sibling temp file and renamed into place, so a
// failed download never leaves a truncated dest behind.
func DownloadFile(ctx context.Context, url string, dest string) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FetchCreateTempFileFmt, dest, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := download(ctx, url, tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FetchCloseFmt, dest, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return fmt.Errorf(messages.FetchRenameFmt, dest, err)
	}
	committed = true
	return nil
}

// DownloadTemp performs a single GET of url into a fresh temp file named after
// pattern and returns its path. The caller owns removal.
func DownloadTemp(ctx context.Context, url string, pattern string) (string, error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf(messages.FetchCreateTempFileFmt, url, err)
	}
	tmpName := tmp.Name()
	if err := download(ctx, url, tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf(messages.FetchCloseFmt, url, err)
	}
	return tmpName, nil
}

func download(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf(messages.FetchCreateRequestFmt, url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf(messages.FetchDownloadFmt, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf(messages.FetchUnexpectedStatusFmt, url, resp.Status)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf(messages.FetchWriteFmt, url, err)
	}
	return nil
}
