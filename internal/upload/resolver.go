package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Resolver decides the imageUrl to persist for a create or update request.
// An uploaded file always wins over a submitted URL string, on update as
// well as create; within a single request there is no way to prefer the URL
// once a file is attached. With no file, the submitted URL is used verbatim.
type Resolver struct {
	dir     string
	baseURL string
}

func NewResolver(dir, baseURL string) *Resolver {
	return &Resolver{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (r *Resolver) Resolve(file *multipart.FileHeader, submittedURL string) (string, error) {
	if file == nil {
		return submittedURL, nil
	}
	return r.save(file)
}

func (r *Resolver) save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// Timestamp plus random suffix keeps names collision-resistant; the
	// original extension is preserved so content-type inference still works
	// when the file is served back.
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(r.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return r.baseURL + "/uploads/" + name, nil
}
