package s3uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{name: "simple key", uri: "s3://my-bucket/file.txt", wantBucket: "my-bucket", wantKey: "file.txt"},
		{name: "nested key", uri: "s3://my-bucket/a/b/c.tgz", wantBucket: "my-bucket", wantKey: "a/b/c.tgz"},
		{name: "missing scheme", uri: "my-bucket/file.txt", wantErr: true},
		{name: "no key", uri: "s3://my-bucket", wantErr: true},
		{name: "empty key", uri: "s3://my-bucket/", wantErr: true},
		{name: "empty bucket", uri: "s3:///file.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := Parse(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestResolve(t *testing.T) {
	bucket, key, err := Resolve("default-bucket", "images/cat.jpg")
	require.NoError(t, err)
	assert.Equal(t, "default-bucket", bucket)
	assert.Equal(t, "images/cat.jpg", key)

	bucket, key, err = Resolve("default-bucket", "s3://other/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "other", bucket)
	assert.Equal(t, "doc.pdf", key)

	_, _, err = Resolve("default-bucket", "")
	require.Error(t, err)
}
