package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

func TestParseTodoID(t *testing.T) {
	id, err := ParseTodoID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	id, err = ParseTodoID("-1")
	require.NoError(t, err)
	assert.Equal(t, -1, id)

	_, err = ParseTodoID("abc")
	assert.Error(t, err)
}

func TestTaskText(t *testing.T) {
	assert.Equal(t, "Do math homework", TaskText([]string{"Do", "math", "homework"}))
	assert.Equal(t, "", TaskText(nil))
}

func TestStatusFilter(t *testing.T) {
	filter, err := StatusFilter(false, false)
	require.NoError(t, err)
	assert.Nil(t, filter)

	filter, err = StatusFilter(true, false)
	require.NoError(t, err)
	require.NotNil(t, filter)
	assert.False(t, *filter)

	filter, err = StatusFilter(false, true)
	require.NoError(t, err)
	require.NotNil(t, filter)
	assert.True(t, *filter)

	_, err = StatusFilter(true, true)
	assert.Error(t, err)
}

func TestFail_MapsValidationErrors(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)

	err := Fail(f, "ADD_ERROR", ExitError, &todoservice.ValidationError{Field: "task", Err: todoservice.ErrEmptyTask})
	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.True(t, errors.Is(err, todoservice.ErrEmptyTask))
	assert.Contains(t, errOut.String(), "task")

	err = Fail(f, "ADD_ERROR", ExitError, errors.New("disk full"))
	assert.Equal(t, ExitError, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("wrapped: %w", &CodedError{Code: ExitNotFound})))
}
