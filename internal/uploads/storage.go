package uploads

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// Store persists uploaded files and hands back the stored filename.
type Store interface {
	Save(fileHeader *multipart.FileHeader, fieldName string) (string, error)
	Remove(filename string) error
}

// SuffixFunc produces the unique part of a stored filename.
type SuffixFunc func() string

// UniqueSuffix returns "<millis>-<random int below 1e9>". Uniqueness is
// statistical, not cryptographic.
func UniqueSuffix() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1e9))
}

// DiskStore writes uploaded files into a local directory.
type DiskStore struct {
	Dir    string
	Suffix SuffixFunc
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir, Suffix: UniqueSuffix}, nil
}

func (s *DiskStore) Save(fileHeader *multipart.FileHeader, fieldName string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := fmt.Sprintf("%s-%s", fieldName, s.Suffix())
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return filename, nil
}

func (s *DiskStore) Remove(filename string) error {
	return os.Remove(filepath.Join(s.Dir, filepath.Base(filename)))
}
