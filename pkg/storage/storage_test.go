package storage

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/kodingmuda/media-stream-server/pkg/e"
)

func GetDiskBackend(t *testing.T) (Backend, string) {
	t.Helper()
	dir := t.TempDir()
	backend, err := GetStorageBackend("disk", dir)
	if err != nil {
		t.Fatal(err)
	}
	return backend, dir
}

func GetS3Backend(t *testing.T, localstack string) Backend {
	t.Helper()
	bucket := uuid.NewString()

	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String("us-east-1"),
		Endpoint:         aws.String(localstack),
		DisableSSL:       aws.Bool(strings.HasPrefix(localstack, "http://")),
		Credentials:      credentials.NewStaticCredentials("test", "test", ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		t.Fatal(err)
	}

	s3Client := s3.New(sess, sess.Config)
	if _, err = s3Client.CreateBucket(&s3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
		t.Fatal(err)
	}

	query := url.Values{}
	query.Add("endpoint", localstack)
	URL := url.URL{
		Scheme:   "s3",
		Host:     bucket,
		Path:     "someprefix",
		RawQuery: query.Encode(),
	}

	backend, err := GetStorageBackend("s3", URL.String())
	if err != nil {
		t.Fatal(err)
	}
	return backend
}

func TestInvalidBackend(t *testing.T) {
	if _, err := GetStorageBackend("floppy", "/dev/fd0"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestDiskBackendMissingDir(t *testing.T) {
	if _, err := GetStorageBackend("disk", filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDiskBackend(t *testing.T) {
	backend, dir := GetDiskBackend(t)

	t.Run("type-string", testStorageBackendTypeString(backend))

	t.Run("file-path", func(t *testing.T) {
		tables := []struct {
			name     string
			key      string
			expected string
		}{
			{"stored upload path", "/uploads/videos/course-1/intro.mp4", filepath.Join(dir, "videos", "course-1", "intro.mp4")},
			{"relative key", "documents/notes.pdf", filepath.Join(dir, "documents", "notes.pdf")},
			{"traversal stays inside", "/uploads/../../../etc/passwd", filepath.Join(dir, "etc", "passwd")},
		}
		for _, table := range tables {
			t.Run(table.name, func(t *testing.T) {
				result, err := backend.GetFilePath(table.key)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(table.expected, result); diff != "" {
					t.Fatal(diff)
				}
				if !strings.HasPrefix(result, dir+string(filepath.Separator)) {
					t.Fatalf("%s escaped %s", result, dir)
				}
			})
		}
	})

	t.Run("empty-key", func(t *testing.T) {
		for _, key := range []string{"", "/", "/uploads/", ".."} {
			if _, err := backend.GetFilePath(key); !errors.Is(err, e.ErrNotFound) {
				t.Fatalf("GetFilePath(%q) error = %v, want ErrNotFound", key, err)
			}
		}
	})

	t.Run("no-archive-url", func(t *testing.T) {
		if _, err := backend.GenerateArchiveURL(nil, "videos/intro.mp4", ""); !errors.Is(err, e.ErrNotImplemented) {
			t.Fatalf("expected ErrNotImplemented, got %v", err)
		}
	})
}

func TestS3Backend(t *testing.T) {
	s3Endpoint := os.Getenv("STORAGE_S3")
	if s3Endpoint == "" {
		t.Skip("Skipped s3 as no env var")
	}
	// Presigning needs credentials, localstack accepts anything
	for _, name := range []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"} {
		if _, exists := os.LookupEnv(name); !exists {
			_ = os.Setenv(name, "test")
			defer os.Unsetenv(name)
		}
	}
	backend := GetS3Backend(t, s3Endpoint)

	t.Run("type-string", testStorageBackendTypeString(backend))
	t.Run("archive-url", func(t *testing.T) {
		archiveURL, err := backend.GenerateArchiveURL(nil, "/uploads/videos/intro.mp4", `attachment; filename="intro.mp4"`)
		if err != nil {
			t.Fatalf("Failed to generate archive URL: %s", err.Error())
		}
		parsed, err := url.Parse(archiveURL)
		if err != nil {
			t.Fatalf("Archive URL is not valid: %s", err.Error())
		}
		if !strings.HasSuffix(parsed.Path, "/someprefix/videos/intro.mp4") {
			t.Fatalf("unexpected object path %s", parsed.Path)
		}
	})
	t.Run("no-file-path", func(t *testing.T) {
		if _, err := backend.GetFilePath("videos/intro.mp4"); !errors.Is(err, e.ErrNotImplemented) {
			t.Fatalf("expected ErrNotImplemented, got %v", err)
		}
	})
}

func testStorageBackendTypeString(backend Backend) func(t *testing.T) {
	return func(t *testing.T) {
		if len(backend.Type()) == 0 {
			t.Fatal("Backend needs a type string set")
		}
	}
}
