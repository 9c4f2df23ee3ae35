package s3ops

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "NoSuchKey", err: &types.NoSuchKey{}, want: true},
		{name: "NotFound", err: &types.NotFound{}, want: true},
		{name: "wrapped NoSuchKey", err: fmt.Errorf("op: %w", &types.NoSuchKey{}), want: true},
		{name: "generic 404 api error", err: &smithy.GenericAPIError{Code: "NotFound", Message: "not found"}, want: true},
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotFoundAPIError(tt.err))
		})
	}
}

func TestIsNotFoundSentinel(t *testing.T) {
	err := fmt.Errorf("object %q: %w", "k", ErrNotFound)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("object not found")))
}
