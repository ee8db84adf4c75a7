package azureblob

import (
	"errors"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/gin-gonic/gin"
	"github.com/kodingmuda/media-stream-server/pkg/e"
	"github.com/kodingmuda/media-stream-server/pkg/utils"
)

type Backend struct {
	Client              azblob.ContainerClient
	container           string
	sharedKeyCredential *azblob.SharedKeyCredential
}

// ParsePartsFromConnectionString pulls the account, key and container out of
// a connection string, returning false if any are missing.
func ParsePartsFromConnectionString(connStr string) (string, string, string, bool) {
	container := ""
	account := ""
	key := ""

	parts := strings.Split(connStr, ";")
	for _, part := range parts {
		if part == "" {
			continue
		}
		subParts := strings.SplitN(part, "=", 2)
		if len(subParts) < 2 {
			return "", "", "", false
		}

		switch subParts[0] {
		case "Container":
			container = subParts[1]
		case "AccountName":
			account = subParts[1]
		case "AccountKey":
			key = subParts[1]
		}
	}

	if container == "" || account == "" || key == "" {
		return "", "", "", false
	}

	return account, key, container, true
}

func New(connectionString string) (*Backend, error) {
	account, key, container, found := ParsePartsFromConnectionString(connectionString)
	if !found {
		return &Backend{}, errors.New("container, account name or account key missing from connection string")
	}

	creds, err := azblob.NewSharedKeyCredential(account, key)
	if err != nil {
		return &Backend{}, err
	}

	client, err := azblob.NewContainerClientFromConnectionString(connectionString, container, &azblob.ClientOptions{})
	if err != nil {
		return &Backend{}, err
	}

	backend := Backend{
		container:           container,
		Client:              client,
		sharedKeyCredential: creds,
	}
	return &backend, nil
}

func (b *Backend) Setup() error {
	return nil
}

func (b *Backend) Type() string {
	return "azureblob"
}

// GenerateArchiveURL returns a read only SAS URL for the blob. Blob storage
// supports Range requests natively.
func (b *Backend) GenerateArchiveURL(c *gin.Context, key, disposition string) (string, error) {
	blobName := utils.CleanStorageKey(key)
	if blobName == "" {
		return "", e.ErrNotFound
	}

	blobClient := b.Client.NewBlockBlobClient(blobName)
	blobClientSharedKey, err := azblob.NewBlobClientWithSharedKey(blobClient.URL(), b.sharedKeyCredential, &azblob.ClientOptions{})
	if err != nil {
		return "", err
	}
	now := time.Now().Add(-1 * time.Minute)
	expire := time.Now().Add(5 * time.Minute)

	resp, err := blobClientSharedKey.GetSASToken(azblob.BlobSASPermissions{Read: true}, now, expire)
	if err != nil {
		return "", err
	}

	return blobClient.URL() + "?" + resp.Encode(), nil
}

func (b *Backend) GetFilePath(key string) (string, error) {
	return "", e.ErrNotImplemented
}
