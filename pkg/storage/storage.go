package storage

import (
	"errors"

	"github.com/gin-gonic/gin"
	s3 "github.com/kodingmuda/media-stream-server/pkg/storage/aws-s3"
	"github.com/kodingmuda/media-stream-server/pkg/storage/azureblob"
	"github.com/kodingmuda/media-stream-server/pkg/storage/disk"
)

//go:generate mockgen -destination=../mock_backend/storage.go -package=mock_backend -mock_names=Backend=MockStorageBackend github.com/kodingmuda/media-stream-server/pkg/storage Backend

// Backend maps lesson content keys to something that can be served. Disk
// backends hand out local paths which are streamed by this server, object
// stores hand out short-lived URLs which clients are redirected to.
type Backend interface {
	Setup() error
	Type() string
	GetFilePath(key string) (string, error)
	GenerateArchiveURL(c *gin.Context, key, disposition string) (string, error)
}

func GetStorageBackend(backend, connectionString string) (Backend, error) {
	var b Backend
	var err error

	switch backend {
	case "disk":
		b, err = disk.New(connectionString)
	case "s3":
		b, err = s3.New(connectionString)
	case "azureblob":
		b, err = azureblob.New(connectionString)
	default:
		return nil, errors.New("invalid storage backend")
	}

	if err != nil {
		return nil, err
	}

	if err := b.Setup(); err != nil {
		return nil, err
	}

	return b, nil
}
