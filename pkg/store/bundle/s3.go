package bundle

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// ObjectGetter is the part of the S3 client the source needs
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source loads a JSON bundle stored as an S3 object
type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

func NewS3Source(client ObjectGetter, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

// NewS3Client builds a client from the default AWS credential chain
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func (s *S3Source) Load(ctx context.Context) (*domain.Bundle, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("bucket", s.bucket).
		Str("key", s.key).
		Logger()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3 object s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer func() {
		if err := out.Body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close s3 object body")
		}
	}()

	logger.Debug().Msg("loading bundle from s3")
	return Decode(out.Body)
}
