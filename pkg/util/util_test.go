package util

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	base := errors.New("unknown node")
	err := WrapErrorf(base, ErrNotFound, "edge %d -> %d", 1, 2)

	assert.Equal(t, "edge 1 -> 2: unknown node", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, ErrNotFound, ErrorCode(err))

	outer := WrapErrorf(err, ErrBadParamInput, "loading")
	assert.ErrorIs(t, outer, base)
	assert.Equal(t, ErrBadParamInput, ErrorCode(outer))

	assert.Equal(t, ErrInternalServerError, ErrorCode(base))
	assert.Equal(t, "plain", WrapErrorf(nil, ErrConflict, "plain").Error())
}

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("3 4 0\r\nlast line"))

	line, err := ReadLine(br)
	require.NoError(t, err)
	assert.Equal(t, "3 4 0", line)

	line, err = ReadLine(br)
	require.NoError(t, err)
	assert.Equal(t, "last line", line)

	_, err = ReadLine(br)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReverseG(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, ReverseG(in))
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Empty(t, ReverseG([]int{}))
}

func TestAssertPanic(t *testing.T) {
	assert.NotPanics(t, func() { AssertPanic(true, "ok") })
	assert.PanicsWithValue(t, "broken", func() { AssertPanic(false, "broken") })
}
