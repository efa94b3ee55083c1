package core_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/aide/pkg/core"
)

func TestValidationError(t *testing.T) {
	_, parseErr := strconv.Atoi("abc")
	err := core.Invalid("id", "abc", parseErr)

	assert.True(t, errors.Is(err, core.ErrValidation))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), `invalid id "abc"`)

	var verr *core.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "id", verr.Field)
}

func TestNotFound(t *testing.T) {
	err := core.NotFound("tasks", 7)
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.Equal(t, "tasks #7: record not found", err.Error())
}
