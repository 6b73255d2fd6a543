package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "bucket and key",
			err:  NewObjectError("uploadFile", "my-bucket", "data/x.csv", ErrTransfer),
			want: "admin.uploadFile my-bucket/data/x.csv: admin: transfer failed",
		},
		{
			name: "bucket only",
			err:  NewError("clearPrefix", ErrTransfer).WithBucket("my-bucket"),
			want: "admin.clearPrefix bucket my-bucket: admin: transfer failed",
		},
		{
			name: "key only",
			err:  NewError("clearDir", ErrNotFound).WithKey("output/data"),
			want: "admin.clearDir output/data: admin: not found",
		},
		{
			name: "neither",
			err:  NewError("load", ErrNotFound),
			want: "admin.load: admin: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestUnwrapAndSentinels(t *testing.T) {
	err := NewObjectError("uploadFile", "b", "k", ErrTransfer).
		WithMessage("PutObject rejected")

	assert.True(t, errors.Is(err, ErrTransfer))
	assert.True(t, IsTransfer(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "PutObject rejected")
}

func TestWithMessagePreservesChain(t *testing.T) {
	err := NewError("load", ErrNotFound).
		WithKey("prices.gob").
		WithMessage("open prices.gob: file does not exist")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "file does not exist")
	assert.Contains(t, err.Error(), "prices.gob")
}
