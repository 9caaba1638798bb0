package blob

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Store struct {
	client s3Client
	bucket string
}

func NewS3Store(ctx context.Context, bucket, region string) (*S3Store, error) {
	const fn = "NewS3Store"
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return &S3Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, appID string, content io.Reader) (Object, error) {
	const fn = "S3Store:Put"
	// Bundles top out at tens of megabytes, so buffering to hash before
	// the upload is acceptable.
	data, err := io.ReadAll(content)
	if err != nil {
		return Object{}, fmt.Errorf("%s:%w:%w", fn, ErrPutFailed, err)
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	key := fmt.Sprintf("bundles/%s/%s", appID, hash)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
	})
	if err != nil {
		return Object{}, fmt.Errorf("%s:%w:%w", fn, ErrPutFailed, err)
	}
	return Object{
		Locator: fmt.Sprintf("s3://%s/%s", s.bucket, key),
		Hash:    hash,
		Size:    int64(len(data)),
	}, nil
}
