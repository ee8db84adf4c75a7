package disk

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kodingmuda/media-stream-server/pkg/e"
	"github.com/kodingmuda/media-stream-server/pkg/utils"
)

type Backend struct {
	BaseDir string
}

func New(connectionString string) (*Backend, error) {
	baseDir, err := filepath.Abs(connectionString)
	if err != nil {
		return nil, err
	}
	if _, err = os.Stat(baseDir); os.IsNotExist(err) {
		return nil, errors.New("path does not exist")
	}

	backend := Backend{BaseDir: baseDir}
	return &backend, nil
}

func (b *Backend) Setup() error {
	info, err := os.Stat(b.BaseDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("storage path is not a directory")
	}
	return nil
}

func (b *Backend) Type() string {
	return "disk"
}

// GetFilePath only checks the key stays inside BaseDir, whether the file is
// there is decided when it is served.
func (b *Backend) GetFilePath(key string) (string, error) {
	cleaned := utils.CleanStorageKey(key)
	if cleaned == "" {
		return "", e.ErrNotFound
	}

	filePath := filepath.Join(b.BaseDir, filepath.FromSlash(cleaned))
	if !strings.HasPrefix(filePath, b.BaseDir+string(filepath.Separator)) {
		return "", e.ErrNotFound
	}

	return filePath, nil
}

func (b *Backend) GenerateArchiveURL(c *gin.Context, key, disposition string) (string, error) {
	return "", e.ErrNotImplemented
}
