package presign

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setStoreEnv(t *testing.T) {
	t.Helper()
	t.Setenv("S3_ENDPOINT", "http://minio.test:9000")
	t.Setenv("S3_ACCESS_KEY", "AKIATEST")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("S3_BUCKET", "bkt")
	t.Setenv("S3_REGION", "us-east-1")
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRunExpiresAfterPositional(t *testing.T) {
	setStoreEnv(t)

	var code int
	out := captureStdout(t, func() {
		code = Run([]string{"docs/file.txt", "-expires", "3600"})
	})

	require.Equal(t, 0, code)
	assert.Contains(t, out, "/bkt/docs/file.txt")
	assert.Contains(t, out, "X-Amz-Expires=3600")
}

func TestRunDefaultExpiry(t *testing.T) {
	setStoreEnv(t)

	var code int
	out := captureStdout(t, func() {
		code = Run([]string{"docs/file.txt"})
	})

	require.Equal(t, 0, code)
	assert.Contains(t, out, "X-Amz-Expires=300")
}

func TestRunRejectsExtraPositionals(t *testing.T) {
	setStoreEnv(t)

	code := Run([]string{"docs/file.txt", "stray-argument"})
	assert.Equal(t, 1, code)
}

func TestRunRejectsNonPositiveExpires(t *testing.T) {
	setStoreEnv(t)

	code := Run([]string{"docs/file.txt", "-expires", "0"})
	assert.Equal(t, 1, code)
}
