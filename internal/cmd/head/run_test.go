package head

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"s3cli/internal/shared/s3ops"
)

func setStoreEnv(t *testing.T, endpoint string) {
	t.Helper()
	t.Setenv("S3_ENDPOINT", endpoint)
	t.Setenv("S3_ACCESS_KEY", "AKIATEST")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("S3_BUCKET", "bkt")
	t.Setenv("S3_REGION", "us-east-1")
}

func TestMetaFieldsOrder(t *testing.T) {
	meta := &s3ops.ObjectMetadata{
		Key:          "docs/report.pdf",
		Size:         2048,
		ContentType:  "application/pdf",
		ETag:         `"abc123"`,
		LastModified: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		StorageClass: "STANDARD",
		Metadata: map[string]string{
			"zeta":  "last",
			"alpha": "first",
			"mid":   "middle",
		},
	}

	fields := metaFields(meta)
	require.Len(t, fields, 9)

	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		labels = append(labels, f.label)
	}
	assert.Equal(t, []string{
		"Key", "Size", "ContentType", "ETag", "LastModified", "StorageClass",
		"Meta:alpha", "Meta:mid", "Meta:zeta",
	}, labels)
}

func TestMetaFieldsSkipsEmptyOptionals(t *testing.T) {
	meta := &s3ops.ObjectMetadata{
		Key:         "k",
		Size:        1,
		ContentType: "text/plain",
		ETag:        `"e"`,
	}

	fields := metaFields(meta)
	require.Len(t, fields, 4)
	assert.Equal(t, "ETag", fields[3].label)
}

func TestRunRejectsExtraPositionals(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()
	setStoreEnv(t, srv.URL)

	code := Run([]string{"key1", "key2"})
	assert.Equal(t, 1, code)
	assert.Zero(t, requests.Load())
}
