package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// StatusError is returned by Download when the server answers with anything but 200.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code on download: %d", e.Code)
}

// Download returns the body of a GET request to url.
func Download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request %w", err)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing request %w", err)
	}
	defer res.Body.Close()

	buf, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: res.StatusCode, Body: buf}
	}

	return buf, nil
}

// DownloadJSON fetches url and decodes the JSON body into v.
func DownloadJSON(ctx context.Context, client *http.Client, url string, v any) error {
	buf, err := Download(ctx, client, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("error decoding response %w", err)
	}

	return nil
}

// ReadJSON decodes the JSON file at path into v. A missing file is reported
// with an error wrapping fs.ErrNotExist.
func ReadJSON(path string, v any) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file %w", err)
	}

	if err := json.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}

	return nil
}

// WriteJSON encodes v and atomically replaces the file at path with it.
func WriteJSON(path string, v any) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}

	return WriteFileAtomic(path, buf)
}

// WriteFileAtomic writes data to a temp file next to path and renames it over path,
// so readers see either the old or the new content and never a partial write.
func WriteFileAtomic(path string, data []byte) error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating directory %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), id.String()))

	log.Debug().Int("bytes", len(data)).Str("path", tmp).Msg("creating temp file")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("error creating temp file %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		RemoveTempFile(tmp)
		return fmt.Errorf("error writing temp file %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		RemoveTempFile(tmp)
		return fmt.Errorf("error syncing temp file %w", err)
	}

	if err := f.Close(); err != nil {
		RemoveTempFile(tmp)
		return fmt.Errorf("error closing temp file %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		RemoveTempFile(tmp)
		return fmt.Errorf("error replacing %s: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("replaced file")

	return nil
}

// RemoveTempFile removes a specified temporary file at the given path and logs success or failure.
func RemoveTempFile(path string) {
	err := os.Remove(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up temp file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up temp file")
}
