package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/npmpath/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.NpmPathError
		want string
	}{
		{
			name: "plain",
			err:  errors.New(errors.ErrExecutable, "cannot locate executable"),
			want: "[EXECUTABLE] cannot locate executable",
		},
		{
			name: "formatted",
			err:  errors.Newf(errors.ErrInvalidInput, "unknown format %q", "xml"),
			want: `[INVALID_INPUT] unknown format "xml"`,
		},
		{
			name: "wrapped",
			err:  errors.Wrap(stderrors.New("read-only"), errors.ErrEnvWrite, "cannot set PATH"),
			want: "[ENV_WRITE] cannot set PATH: read-only",
		},
		{
			name: "wrapped formatted",
			err:  errors.Wrapf(stderrors.New("denied"), errors.ErrConfigWrite, "cannot write %s", "config.toml"),
			want: "[CONFIG_WRITE] cannot write config.toml: denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.NotNil(t, tt.err.Details)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrWorkingDir, "cannot determine working directory").
		WithDetail("cwd", "/gone").
		WithDetails(map[string]interface{}{"attempt": 2})

	assert.Equal(t, map[string]interface{}{"cwd": "/gone", "attempt": 2}, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestCodeMatching(t *testing.T) {
	base := stderrors.New("no such file")
	wrapped := fmt.Errorf("compose: %w", errors.Wrap(base, errors.ErrRootNotFound, "npm root not found"))

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrRootNotFound))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrExecutable))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrRootNotFound))
	assert.Equal(t, errors.ErrRootNotFound, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(base))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))

	assert.True(t, stderrors.Is(wrapped, base), "root cause stays reachable")
	assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrRootNotFound, "")), "codes compare equal")
	assert.False(t, stderrors.Is(wrapped, errors.New(errors.ErrEnvWrite, "")))
}

func TestChain(t *testing.T) {
	cause := stderrors.New("permission denied")
	load := errors.Wrap(cause, errors.ErrConfigParse, "bad toml")
	top := errors.Wrap(load, errors.ErrConfigLoad, "failed to load config")

	var inner *errors.NpmPathError
	require.True(t, stderrors.As(top.Unwrap(), &inner))
	assert.Equal(t, errors.ErrConfigParse, inner.Code)
	assert.ErrorIs(t, top, cause)
}

func TestIsAs(t *testing.T) {
	cause := stderrors.New("no such file")
	err := errors.Wrap(cause, errors.ErrWorkingDir, "getwd failed")

	assert.True(t, errors.Is(err, cause))
	var npmErr *errors.NpmPathError
	require.True(t, errors.As(fmt.Errorf("outer: %w", err), &npmErr))
	assert.Equal(t, errors.ErrWorkingDir, npmErr.Code)
}
