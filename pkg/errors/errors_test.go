package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "insert order")

	assert.Equal(t, CodeDependency, err.Code())
	assert.Equal(t, "insert order", err.Message())
	assert.ErrorIs(t, err, cause)
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	inner := New(CodeNotFound, "worker not found")
	outer := fmt.Errorf("record shift: %w", inner)

	typed := As(outer)
	require.NotNil(t, typed)
	assert.Equal(t, CodeNotFound, typed.Code())

	assert.Nil(t, As(stdErrors.New("plain")))
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeStateConflict, "insufficient stock"))
	assert.True(t, HasCode(err, CodeStateConflict))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(nil, CodeNotFound))
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestDumpCollectsChain(t *testing.T) {
	cause := stdErrors.New("duplicate key value violates unique constraint")
	err := Wrap(CodeConflict, cause, "create store")

	dump := Dump(err)
	assert.Equal(t, CodeConflict, dump.Code)
	assert.Len(t, dump.Chain, 2)
	assert.Equal(t, err.Error(), dump.TopMessage)
}
