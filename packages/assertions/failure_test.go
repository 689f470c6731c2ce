package assertions

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailure_Message(t *testing.T) {
	err := Equal("a", "b")
	require.Error(t, err)

	f, ok := AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, "Expected a, Got b", f.Message())
	assert.Equal(t, f.Message(), f.Error())
	assert.Equal(t, f.Message(), fmt.Sprintf("%v", f))
	assert.Equal(t, f.Message(), fmt.Sprintf("%s", f))
	assert.Equal(t, `"Expected a, Got b"`, fmt.Sprintf("%q", f))
	assert.Equal(t, f.Message(), fmt.Sprintf("%d", f))
	assert.Equal(t, f.Message(), fmt.Sprintf("%x", f))
}

func TestFailure_StackTrace(t *testing.T) {
	err := True(false)
	require.Error(t, err)

	out := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(out, "Expected True, got False."))
	assert.Contains(t, out, "TestFailure_StackTrace")
}

func TestIsFailure(t *testing.T) {
	assert.True(t, IsFailure(False(true)))
	assert.True(t, IsFailure(fmt.Errorf("step 2: %w", False(true))))
	assert.False(t, IsFailure(io.EOF))
	assert.False(t, IsFailure(nil))
}

func TestFail(t *testing.T) {
	err := Fail("step %d of %d", 2, 5)
	assert.EqualError(t, err, "step 2 of 5")
	assert.True(t, IsFailure(err))

	assert.EqualError(t, Fail(404, "not found", true), "404 not found true")
}
