package s3ops

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

const fallbackContentType = "application/octet-stream"

type UploadResult struct {
	Key         string
	Size        int64
	ContentType string
	ETag        string
}

// ResolveKey picks the remote key for a local file: an explicit key wins
// outright, otherwise the prefix is joined with the file's base name.
func ResolveKey(localPath, key, prefix string) string {
	if key != "" {
		return key
	}
	return prefix + filepath.Base(localPath)
}

// UploadFile writes a local file to bucket/key, creating or overwriting
// the remote object.
func UploadFile(ctx context.Context, client API, localPath, bucket, key string) (*UploadResult, error) {
	contentType := DetectContentType(localPath)

	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	resp, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(stat.Size()),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload: %w", err)
	}

	return &UploadResult{
		Key:         key,
		Size:        stat.Size(),
		ContentType: contentType,
		ETag:        aws.ToString(resp.ETag),
	}, nil
}

// DetectContentType sniffs the file's content, falling back to the
// extension and finally to application/octet-stream.
func DetectContentType(path string) string {
	if mt, err := mimetype.DetectFile(path); err == nil {
		return mt.String()
	}
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt
	}
	return fallbackContentType
}
