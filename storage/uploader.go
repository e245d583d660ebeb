package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"path"
	"strconv"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/overtone-studio/site-backend/config"
)

// File is one binary payload submitted for upload.
type File struct {
	Name        string
	ContentType string
	Data        io.Reader
}

// Uploader stores gallery images in an S3 bucket and hands back publicly
// resolvable URLs.
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        zerolog.Logger
}

// NewUploader builds an Uploader from environment configuration. The
// bucket must allow public reads; PUBLIC_STORAGE_URL is the base under
// which stored keys resolve (e.g. a CDN or the bucket website endpoint).
func NewUploader(ctx context.Context, c map[string]string) (*Uploader, error) {
	bucket := config.GetString(c, "STORAGE_BUCKET", "works")
	baseURL := config.GetString(c, "PUBLIC_STORAGE_URL", "")
	if baseURL == "" {
		return nil, fmt.Errorf("PUBLIC_STORAGE_URL is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Uploader{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(baseURL, "/"),
		logger:        log.With().Str("component", "uploader").Logger(),
	}, nil
}

// Upload stores one file under a freshly generated object name and returns
// its public URL.
func (u *Uploader) Upload(ctx context.Context, file File) (string, error) {
	data, err := io.ReadAll(file.Data)
	if err != nil {
		return "", fmt.Errorf("reading upload payload: %w", err)
	}

	key := ObjectName(file.Name, time.Now())
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &file.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("storing object %s: %w", key, err)
	}

	u.logger.Info().Str("key", key).Int("bytes", len(data)).Msg("stored object")
	return u.publicBaseURL + "/" + key, nil
}

// UploadAll stores a batch of files concurrently and returns their public
// URLs in submission order. The batch succeeds or fails as a whole: any
// single failure fails the call, and objects already stored by sibling
// uploads are left in place (no rollback is attempted).
func (u *Uploader) UploadAll(ctx context.Context, files []File) ([]string, error) {
	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			url, err := u.Upload(gctx, file)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// ObjectName generates a collision-resistant object name from the upload
// time and a random suffix, keeping the original file's extension:
// <unix-millis>_<9 base36 chars>.<ext>.
func ObjectName(original string, now time.Time) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}

	name := strconv.FormatInt(now.UnixMilli(), 10) + "_" + string(suffix)
	if ext := path.Ext(original); ext != "" {
		name += ext
	}
	return name
}
