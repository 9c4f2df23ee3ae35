package s3uri

import (
	"fmt"
	"strings"
)

const scheme = "s3://"

// IsURI reports whether s is written in s3://bucket/key form.
func IsURI(s string) bool {
	return strings.HasPrefix(s, scheme)
}

// Parse extracts bucket and key from an S3 URI (s3://bucket/key/path).
func Parse(uri string) (bucket, key string, err error) {
	if !IsURI(uri) {
		return "", "", fmt.Errorf("invalid S3 URI %q: must start with s3://", uri)
	}
	rest := strings.TrimPrefix(uri, scheme)
	idx := strings.IndexByte(rest, '/')
	if idx == -1 {
		return "", "", fmt.Errorf("invalid S3 URI %q: no key found after bucket name", uri)
	}
	bucket = rest[:idx]
	key = rest[idx+1:]
	if bucket == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: bucket name is empty", uri)
	}
	if key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: key is empty", uri)
	}
	return bucket, key, nil
}

// Resolve interprets target either as a bare key inside defaultBucket or,
// when written as s3://bucket/key, as an explicit bucket override.
func Resolve(defaultBucket, target string) (bucket, key string, err error) {
	if IsURI(target) {
		return Parse(target)
	}
	if target == "" {
		return "", "", fmt.Errorf("key must not be empty")
	}
	return defaultBucket, target, nil
}
