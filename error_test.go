package hoto_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/terokarvinen/hoto"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := hoto.Errorf(hoto.ENOTFOUND, "file %q not found", "tero.html")

	assert.Equal(t, hoto.ENOTFOUND, hoto.ErrorCode(err))
	assert.Equal(t, "file \"tero.html\" not found", hoto.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, hoto.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, hoto.EINTERNAL, hoto.ErrorCode(errors.New("disk on fire")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, hoto.ErrorMessage(nil))
}
