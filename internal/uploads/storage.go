package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"skillgap-backend/internal/shared/util"
)

// StoragePath maps an original filename to the temp path it will be stored
// under. Deterministic given its inputs; the caller supplies the uniqueness.
func StoragePath(dir string, now time.Time, id string, originalName string) (string, error) {
	sanitized, err := util.SanitizeFileName(originalName)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d-%s-%s", now.UnixMilli(), id, sanitized)
	return filepath.Join(dir, name), nil
}

// saveTemp writes the upload to path and returns a cleanup function that
// removes it. The cleanup must run on every exit path; uploaded documents are
// request-scoped and never outlive the request.
func saveTemp(path string, r io.Reader) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	cleanup := func() { _ = os.Remove(path) }

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		cleanup()
		return nil, err
	}
	if err := dst.Close(); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}
