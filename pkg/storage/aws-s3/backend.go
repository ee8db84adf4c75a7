package awss3

import (
	"errors"
	"net/url"
	p "path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/kodingmuda/media-stream-server/pkg/e"
	"github.com/kodingmuda/media-stream-server/pkg/streaming"
	"github.com/kodingmuda/media-stream-server/pkg/utils"
)

const presignExpiry = 5 * time.Minute

type Backend struct {
	BucketURL string
	Session   *session.Session
	Client    *s3.S3

	bucket   string
	prefix   string
	region   string
	endpoint string
}

func New(connectionString string) (*Backend, error) {
	parsedURL, err := url.Parse(connectionString)
	if err != nil {
		return &Backend{}, err
	}

	cfg := &aws.Config{Region: aws.String("us-east-1")}
	// S3 compatible stores e.g. s3://bucket/prefix?endpoint=http://localhost:4566
	endpoint := parsedURL.Query().Get("endpoint")
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
		cfg.DisableSSL = aws.Bool(strings.HasPrefix(endpoint, "http://"))
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return &Backend{}, err
	}

	backend := Backend{
		BucketURL: connectionString,
		Session:   sess,
		region:    "us-east-1", // Region is calculated in Setup()
		endpoint:  endpoint,
	}
	return &backend, nil
}

func (b *Backend) Setup() error {
	parsedURL, err := url.Parse(b.BucketURL)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "s3" {
		//goland:noinspection GoErrorStringFormat
		return errors.New("S3 url should be in the format of s3://bucket/prefix")
	}

	b.bucket = parsedURL.Host
	b.prefix = strings.TrimPrefix(parsedURL.Path, "/")

	b.Client = s3.New(b.Session, &aws.Config{Region: aws.String(b.region)})
	if b.endpoint != "" {
		// Custom endpoints don't do bucket location lookups reliably
		return nil
	}

	resp, err := b.Client.GetBucketLocation(&s3.GetBucketLocationInput{Bucket: aws.String(b.bucket)})
	if err != nil {
		return err
	}

	if resp.LocationConstraint != nil {
		b.region = *resp.LocationConstraint
		b.Session.Config.Region = resp.LocationConstraint
		b.Client = s3.New(b.Session, &aws.Config{Region: resp.LocationConstraint})
	}

	return nil
}

func (b *Backend) Type() string {
	return "s3"
}

func (b *Backend) objectKey(key string) string {
	return p.Join(b.prefix, utils.CleanStorageKey(key))
}

// GenerateArchiveURL presigns a GET for the object. S3 answers Range requests
// itself so the client can seek without going through this server.
func (b *Backend) GenerateArchiveURL(c *gin.Context, key, disposition string) (string, error) {
	if utils.CleanStorageKey(key) == "" {
		return "", e.ErrNotFound
	}

	input := &s3.GetObjectInput{
		Bucket:              aws.String(b.bucket),
		Key:                 aws.String(b.objectKey(key)),
		ResponseContentType: aws.String(streaming.ContentType(key)),
	}
	if disposition != "" {
		input.ResponseContentDisposition = aws.String(disposition)
	}

	req, _ := b.Client.GetObjectRequest(input)
	presignedURL, err := req.Presign(presignExpiry)
	if err != nil {
		return "", err
	}

	return presignedURL, nil
}

func (b *Backend) GetFilePath(key string) (string, error) {
	return "", e.ErrNotImplemented
}
