package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultRegion is used when S3Config.Region is empty.
const DefaultRegion = "us-east-1"

// S3Config holds the settings for an S3-compatible translation source.
type S3Config struct {
	// Bucket is the bucket name (required).
	Bucket string

	// AccessKey is the access key ID (required).
	AccessKey string

	// SecretKey is the secret access key (required).
	SecretKey string

	// Prefix restricts discovery to keys under this prefix (optional).
	// The prefix is stripped from the reported file paths.
	Prefix string

	// Endpoint is a custom S3 endpoint URL (optional, for MinIO and other
	// S3-compatible services).
	Endpoint string

	// Region is the AWS region (default: us-east-1).
	Region string

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool
}

func (c *S3Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.Prefix != "" && !strings.HasSuffix(c.Prefix, "/") {
		c.Prefix += "/"
	}
}

func (c *S3Config) validate() error {
	if c.Bucket == "" {
		return ErrInvalidConfig
	}
	if c.AccessKey == "" {
		return ErrInvalidConfig
	}
	if c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// S3Source discovers translation files in S3-compatible object storage.
// It lets a fleet of services share one centrally managed translation set.
type S3Source struct {
	client *s3.Client
	cfg    S3Config
}

// S3 creates a Source over an S3 bucket prefix with the given configuration.
func S3(cfg S3Config) (*S3Source, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Source{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// Files lists every object under the configured prefix and fetches its
// content. Key order is whatever the bucket returns; the registry builder
// re-sorts regardless.
func (s *S3Source) Files(ctx context.Context) ([]File, error) {
	keys, err := s.listKeys(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]File, 0, len(keys))
	for _, key := range keys {
		data, err := s.fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		out = append(out, File{
			Path: strings.TrimPrefix(key, s.cfg.Prefix),
			Data: data,
		})
	}

	return out, nil
}

func (s *S3Source) listKeys(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.Bucket),
	}
	if s.cfg.Prefix != "" {
		input.Prefix = aws.String(s.cfg.Prefix)
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, ErrListFailed)
		}
		for _, object := range page.Contents {
			key := aws.ToString(object.Key)
			// Zero-byte keys ending in "/" are directory placeholders some
			// consoles create.
			if strings.HasSuffix(key, "/") {
				continue
			}
			keys = append(keys, key)
		}
	}

	return keys, nil
}

func (s *S3Source) fetch(ctx context.Context, key string) ([]byte, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrNotFound)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrListFailed, key, err)
	}
	return data, nil
}
