package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// LocalStore writes uploaded files to a directory served back as static
// content. Generated names are unix-nanos plus a random suffix, so
// concurrent uploads cannot collide.
type LocalStore struct {
	dir       string
	publicDir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir, publicDir: "/uploads"}, nil
}

// Dir returns the directory the store writes to, for static route mounting.
func (s *LocalStore) Dir() string { return s.dir }

// Save persists one multipart file and returns its public URL path.
func (s *LocalStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name, err := uniqueName(fh.Filename)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.publicDir + "/" + name, nil
}

// DetectMIME sniffs the content type of an uploaded file from its bytes
// rather than trusting the client-supplied header.
func DetectMIME(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	return mt.String(), nil
}

func uniqueName(original string) (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix), ext), nil
}
