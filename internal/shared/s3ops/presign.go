package s3ops

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignGet builds a time-limited download URL for bucket/key. The key is
// not checked for existence; a URL for an absent key fails on first use.
func PresignGet(ctx context.Context, presigner Presigner, bucket, key string, expires time.Duration) (string, error) {
	if expires <= 0 {
		return "", fmt.Errorf("expires must be positive, got %s", expires)
	}

	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expires
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}

	return req.URL, nil
}
