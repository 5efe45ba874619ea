package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := fmt.Errorf("%w: inserting log: %w", ErrQueryExecution, cause)

	assert.True(t, errors.Is(err, ErrQueryExecution))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "query execution failed: inserting log: disk I/O error", err.Error())
}
