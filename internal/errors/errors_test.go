package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Config file not found", "Run 'netgraph init' to create one")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Config file not found", err.Message)
	assert.Equal(t, "Run 'netgraph init' to create one", err.Suggestion)
	assert.Nil(t, err.Cause)
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "message only",
			err:      New(ErrNetstat, "Failed to read interface counters", ""),
			contains: []string{"✗ Failed to read interface counters"},
		},
		{
			name:     "message and suggestion",
			err:      New(ErrConfig, "Invalid interval", "Use a positive number of seconds"),
			contains: []string{"✗ Invalid interval", "Use a positive number of seconds"},
		},
		{
			name:     "message, cause, and suggestion",
			err:      WrapWithCode(stderrors.New("permission denied"), ErrNetstat, "Counter query failed", "Check /proc is readable"),
			contains: []string{"✗ Counter query failed", "permission denied", "Check /proc is readable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestWrapDefaultsToNetstat(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, "Snapshot failed")

	assert.Equal(t, ErrNetstat, err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(cause, "wrapped")

	assert.True(t, stderrors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	err := New(ErrRender, "Chart build failed", "")

	assert.True(t, IsCode(err, ErrRender))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrRender))
	assert.False(t, IsCode(stderrors.New("plain"), ErrRender))
}
