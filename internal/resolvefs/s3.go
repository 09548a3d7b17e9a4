package resolvefs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// ErrBackend wraps any transport/auth failure the S3 SDK reports, so a
// resolve.Options caller never has to understand AWS-specific error
// types — only that a read failed.
type ErrBackend struct {
	Op  string
	Err error
}

func (e *ErrBackend) Error() string { return fmt.Sprintf("resolvefs: s3 %s: %v", e.Op, e.Err) }
func (e *ErrBackend) Unwrap() error { return e.Err }

// S3Config configures an S3 provider. BackingDir, when non-empty,
// names a local directory used as a read-through cache: a hit there
// skips the bucket entirely, and a bucket read is written back to it.
type S3Config struct {
	Bucket     string
	Region     string
	BackingDir string
}

// S3 resolves IsFile/ReadFile against an S3-compatible bucket, with an
// optional local-disk backing cache consulted before the bucket.
type S3 struct {
	cfg        S3Config
	client     *s3.Client
	downloader *manager.Downloader
}

// NewS3 constructs an S3 provider, verifying bucket access up front
// with a HeadBucket call.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("resolvefs: S3Config.Bucket is required")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, &ErrBackend{Op: "LoadDefaultConfig", Err: err}
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Timeout: 10 * time.Second}
		if cfg.Region != "" {
			o.Region = cfg.Region
		}
	})
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &cfg.Bucket}); err != nil {
		return nil, &ErrBackend{Op: "HeadBucket", Err: err}
	}
	downloader := manager.NewDownloader(client)
	return &S3{cfg: cfg, client: client, downloader: downloader}, nil
}

func (p *S3) backingPath(key string) string {
	if p.cfg.BackingDir == "" {
		return ""
	}
	return filepath.Join(p.cfg.BackingDir, filepath.FromSlash(key))
}

// IsFile checks the backing cache first, then issues a HeadObject.
func (p *S3) IsFile(key string) bool {
	if bp := p.backingPath(key); bp != "" {
		if info, err := os.Stat(bp); err == nil && !info.IsDir() {
			return true
		}
	}
	_, err := p.client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: &p.cfg.Bucket,
		Key:    &key,
	})
	if err == nil {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound") {
		return false
	}
	return false
}

// ReadFile checks the backing cache first, then downloads through the
// SDK's concurrent-part manager.Downloader and opportunistically
// populates the backing cache on a miss.
func (p *S3) ReadFile(key string) (string, error) {
	bp := p.backingPath(key)
	if bp != "" {
		if b, err := os.ReadFile(bp); err == nil {
			return string(b), nil
		}
	}
	buf := manager.NewWriteAtBuffer(nil)
	_, err := p.downloader.Download(context.Background(), buf, &s3.GetObjectInput{
		Bucket: &p.cfg.Bucket,
		Key:    &key,
	})
	if err != nil {
		return "", &ErrBackend{Op: "Download", Err: err}
	}
	data := buf.Bytes()
	if bp != "" {
		if err := os.MkdirAll(filepath.Dir(bp), 0o755); err == nil {
			_ = os.WriteFile(bp, data, 0o644)
		}
	}
	return string(data), nil
}
