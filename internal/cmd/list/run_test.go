package list

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setStoreEnv(t *testing.T, endpoint string) {
	t.Helper()
	t.Setenv("S3_ENDPOINT", endpoint)
	t.Setenv("S3_ACCESS_KEY", "AKIATEST")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("S3_BUCKET", "bkt")
	t.Setenv("S3_REGION", "us-east-1")
}

func TestRunRejectsPositionals(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()
	setStoreEnv(t, srv.URL)

	code := Run([]string{"images/"})
	assert.Equal(t, 1, code)
	assert.Zero(t, requests.Load(), "a bare positional is not a prefix; it must be rejected")
}
