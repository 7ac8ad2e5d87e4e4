package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// DocxContentType is the MIME type of uploaded output documents.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// BlobStoreConfig locates source files and output documents.
type BlobStoreConfig struct {
	Bucket string
	// Prefix is the folder output documents are uploaded under.
	Prefix string
	// PublicBaseURL is joined with bucket and object to form download links.
	PublicBaseURL string
	// WriteTimeout bounds a single upload attempt.
	WriteTimeout time.Duration
}

// BlobStore downloads source files and uploads output documents in one
// Cloud Storage bucket.
type BlobStore struct {
	client  *storage.Client
	config  BlobStoreConfig
	backoff time.Duration
}

// NewBlobStore returns a BlobStore over client.
func NewBlobStore(client *storage.Client, config BlobStoreConfig) *BlobStore {
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 50 * time.Second
	}
	config.PublicBaseURL = strings.TrimSuffix(config.PublicBaseURL, "/")
	return &BlobStore{client: client, config: config, backoff: time.Second}
}

// LocalFileName is the scratch file name for the index-th reference of a
// submission. The index prefix keeps objects that share a base name apart.
func LocalFileName(index int, object string) string {
	return fmt.Sprintf("%02d-%s", index, path.Base(object))
}

// Download streams the object behind ref into dir and returns the local
// path. index is the reference's position in the submission.
func (b *BlobStore) Download(ctx context.Context, ref, dir string, index int) (string, error) {
	bucket, object, err := ParseObjectRef(ref, b.config.Bucket)
	if err != nil {
		return "", err
	}
	destPath := filepath.Join(dir, LocalFileName(index, object))
	if err := b.streamObject(ctx, bucket, object, destPath); err != nil {
		return "", err
	}
	return destPath, nil
}

func (b *BlobStore) streamObject(ctx context.Context, bucket, object, destPath string) error {
	reader, err := b.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("gs://%s/%s: %w", bucket, object, ErrNotFound)
		}
		return fmt.Errorf("failed to get GCS object reader for gs://%s/%s: %w", bucket, object, err)
	}
	defer reader.Close()

	localFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create local file at %s: %w", destPath, err)
	}
	defer localFile.Close()

	if _, err := io.Copy(localFile, reader); err != nil {
		return fmt.Errorf("failed to copy GCS object to local file: %w", err)
	}
	return nil
}

// ObjectName is where the output document named fileName is stored for a
// submission. Repeated uploads for the same submission and file overwrite.
func (b *BlobStore) ObjectName(submissionID, fileName string) string {
	return path.Join(b.config.Prefix, submissionID, fileName)
}

// PublicURL is the download link of an object in the configured bucket.
func (b *BlobStore) PublicURL(object string) string {
	escaped := strings.Split(object, "/")
	for i, seg := range escaped {
		escaped[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("%s/%s/%s", b.config.PublicBaseURL, b.config.Bucket, strings.Join(escaped, "/"))
}

// Upload stores the file at localPath for submissionID, retrying with
// exponential backoff, and returns its public URL.
func (b *BlobStore) Upload(ctx context.Context, localPath, submissionID string) (string, error) {
	object := b.ObjectName(submissionID, filepath.Base(localPath))
	if err := b.uploadFile(ctx, localPath, object); err != nil {
		return "", err
	}
	return b.PublicURL(object), nil
}

func (b *BlobStore) uploadFile(ctx context.Context, localPath, destObject string) error {
	const maxRetries = 4
	var backoff = b.backoff
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		err := func() error {
			localFileReader, err := os.Open(localPath)
			if err != nil {
				return fmt.Errorf("could not open local file %s: %w", localPath, err)
			}
			defer localFileReader.Close()

			writeCtx, cancel := context.WithTimeout(ctx, b.config.WriteTimeout)
			defer cancel()

			gcsWriter := b.client.Bucket(b.config.Bucket).Object(destObject).NewWriter(writeCtx)
			gcsWriter.ContentType = DocxContentType

			if _, err := io.Copy(gcsWriter, localFileReader); err != nil {
				_ = gcsWriter.Close()
				return fmt.Errorf("io.Copy to GCS failed: %w", err)
			}

			if err := gcsWriter.Close(); err != nil {
				return fmt.Errorf("failed to close GCS writer (finalize upload): %w", err)
			}
			return nil
		}()

		if err == nil {
			return nil
		}

		lastErr = err
		slog.Warn(
			"Upload failed, will retry.",
			"gcsObject", destObject,
			"attempt", i+1,
			"maxRetries", maxRetries,
			"backoff", backoff.String(),
			"error", err,
		)

		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			slog.Error("Context cancelled during backoff. Aborting retries.", "gcsObject", destObject, "error", ctx.Err())
			return ctx.Err()
		}
	}
	slog.Error("Upload failed after all retries.", "gcsObject", destObject, "error", lastErr)
	return fmt.Errorf("upload for %s failed after all retries: %w", destObject, lastErr)
}

var storageObjectPath = regexp.MustCompile(`/storage/v1/object/(?:public|sign)/([^/]+)/(.+)`)

// ParseObjectRef resolves a source-file reference to a bucket and object.
// Accepted forms are gs://bucket/object, https://storage.googleapis.com/bucket/object,
// URLs containing /storage/v1/object/{public|sign}/bucket/object, and a bare
// object path in defaultBucket.
func ParseObjectRef(ref, defaultBucket string) (bucket, object string, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", errors.New("empty file reference")
	}

	switch {
	case strings.HasPrefix(ref, "gs://"):
		bucket, object, _ = strings.Cut(strings.TrimPrefix(ref, "gs://"), "/")
	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		u, perr := url.Parse(ref)
		if perr != nil {
			return "", "", fmt.Errorf("invalid file reference %q: %w", ref, perr)
		}
		p := u.Path
		if m := storageObjectPath.FindStringSubmatch(p); m != nil {
			bucket, object = m[1], m[2]
		} else if u.Host == "storage.googleapis.com" {
			bucket, object, _ = strings.Cut(strings.TrimPrefix(p, "/"), "/")
		} else {
			return "", "", fmt.Errorf("unrecognized file reference %q", ref)
		}
	default:
		bucket, object = defaultBucket, strings.TrimPrefix(ref, "/")
	}

	if bucket == "" || object == "" {
		return "", "", fmt.Errorf("file reference %q has no bucket or object", ref)
	}
	return bucket, object, nil
}

func isNotFound(err error) bool {
	if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
		return true
	}
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
