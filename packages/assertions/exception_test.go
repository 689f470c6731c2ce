package assertions

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quotaError struct {
	msg   string
	limit int
}

func (e *quotaError) Error() string { return e.msg }

func TestDescribe(t *testing.T) {
	d := Describe(&quotaError{msg: "quota exceeded", limit: 3})
	assert.Equal(t, "quota exceeded", d.Message)
	assert.Equal(t, "*assertions.quotaError", d.Kind.String())
	assert.False(t, d.IsZero())

	assert.True(t, Describe(nil).IsZero())
	assert.Equal(t, "<nil>", Describe(nil).String())
	assert.Equal(t, "*assertions.quotaError: quota exceeded", d.String())
}

func TestEqualException(t *testing.T) {
	tests := []struct {
		name   string
		wanted error
		got    error
		equal  bool
	}{
		{
			name:   "same kind and message",
			wanted: &quotaError{msg: "quota exceeded"},
			got:    &quotaError{msg: "quota exceeded"},
			equal:  true,
		},
		{
			name:   "extra fields ignored",
			wanted: &quotaError{msg: "quota exceeded", limit: 1},
			got:    &quotaError{msg: "quota exceeded", limit: 99},
			equal:  true,
		},
		{
			name:   "same kind different message",
			wanted: &quotaError{msg: "quota exceeded"},
			got:    &quotaError{msg: "quota reset"},
			equal:  false,
		},
		{
			name:   "different kind same message",
			wanted: &quotaError{msg: "EOF"},
			got:    io.EOF,
			equal:  false,
		},
		{
			name:   "stdlib errors with same text",
			wanted: stderrors.New("boom"),
			got:    stderrors.New("boom"),
			equal:  true,
		},
		{
			name:   "wrapped cause is not unwrapped",
			wanted: os.ErrNotExist,
			got:    fmt.Errorf("open config: %w", os.ErrNotExist),
			equal:  false,
		},
		{
			name:   "stack traces ignored",
			wanted: errors.New("disk full"),
			got:    errors.New("disk full"),
			equal:  true,
		},
		{
			name:   "both nil",
			wanted: nil,
			got:    nil,
			equal:  true,
		},
		{
			name:   "nil and error",
			wanted: nil,
			got:    io.EOF,
			equal:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EqualException(tt.wanted, tt.got)
			assert.Equal(t, tt.equal, err == nil, "EqualException: %v", err)
		})
	}
}

func TestEqualException_DefaultMessage(t *testing.T) {
	wanted := &quotaError{msg: "quota exceeded"}
	err := EqualException(wanted, io.EOF)
	require.Error(t, err)

	want := "Exceptions do not match.\n" +
		"\tExpected *assertions.quotaError: quota exceeded,\n" +
		"\tGot *errors.errorString: EOF"
	assert.Equal(t, want, err.Error())
}

func TestEqualException_CustomMessage(t *testing.T) {
	assert.EqualError(t, EqualException(io.EOF, io.ErrUnexpectedEOF, "wrong read error"), "wrong read error")
}
