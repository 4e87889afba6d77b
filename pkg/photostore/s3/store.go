// Package s3 implements photostore.Store on top of Amazon S3 or any S3
// compatible server such as MinIO.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"midcar/pkg/photostore"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

// Options configures the S3 store.
type Options struct {
	Bucket string
	Region string
	// Endpoint overrides the AWS endpoint, e.g. http://localhost:9000 for MinIO.
	Endpoint string
	// PathStyle forces path-style addressing, required by MinIO.
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
	// PublicBaseURL prefixes object keys to build public URLs. When empty the
	// bucket URL is used.
	PublicBaseURL string
}

// Store uploads photos to a bucket.
type Store struct {
	bucket     string
	publicBase string
	uploader   s3manageriface.UploaderAPI
	client     s3iface.S3API
}

var _ photostore.Store = (*Store)(nil)

// New creates a Store with its own AWS session.
func New(opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("bucket is required")
	}

	cfg := aws.NewConfig().
		WithRegion(opts.Region).
		WithS3ForcePathStyle(opts.PathStyle)
	if opts.Endpoint != "" {
		cfg = cfg.WithEndpoint(opts.Endpoint)
	}
	if opts.AccessKeyID != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(opts.AccessKeyID, opts.SecretAccessKey, ""))
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create aws session: %w", err)
	}

	publicBase := opts.PublicBaseURL
	if publicBase == "" {
		switch {
		case opts.Endpoint != "":
			publicBase = strings.TrimRight(opts.Endpoint, "/") + "/" + opts.Bucket
		default:
			publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
		}
	}

	return NewWithClients(opts.Bucket, publicBase, s3manager.NewUploader(sess), s3.New(sess)), nil
}

// NewWithClients assembles a Store from ready made clients.
func NewWithClients(bucket, publicBase string,
	uploader s3manageriface.UploaderAPI,
	client s3iface.S3API) *Store {
	return &Store{
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		uploader:   uploader,
		client:     client,
	}
}

func (s *Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if _, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	}); err != nil {
		return "", fmt.Errorf("could not upload %s: %w", key, err)
	}

	return s.publicBase + "/" + key, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var aErr awserr.Error
		if errors.As(err, &aErr) && aErr.Code() == s3.ErrCodeNoSuchKey {
			return nil
		}

		return fmt.Errorf("could not delete %s: %w", key, err)
	}

	return nil
}
