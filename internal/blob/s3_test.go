package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

type fakeS3Client struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakeS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func Test_S3Store_Put(t *testing.T) {
	client := &fakeS3Client{}
	store := &S3Store{client: client, bucket: "bundles-bucket"}
	content := "zipped bundle bytes"

	object, err := store.Put(context.Background(), "app-1", strings.NewReader(content))
	assert.NoError(t, err)

	sum := sha256.Sum256([]byte(content))
	hash := hex.EncodeToString(sum[:])
	assert.Equal(t, hash, object.Hash)
	assert.Equal(t, int64(len(content)), object.Size)
	assert.Equal(t, "s3://bundles-bucket/bundles/app-1/"+hash, object.Locator)

	if assert.NotNil(t, client.input) {
		assert.Equal(t, "bundles-bucket", *client.input.Bucket)
		assert.Equal(t, "bundles/app-1/"+hash, *client.input.Key)
	}
}

func Test_S3Store_Put_UploadFailure(t *testing.T) {
	store := &S3Store{client: &fakeS3Client{err: errors.New("denied")}, bucket: "bundles-bucket"}
	_, err := store.Put(context.Background(), "app-1", strings.NewReader("bytes"))
	assert.ErrorIs(t, err, ErrPutFailed)
}
