package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner_NoTTYRunsActionDirectly(t *testing.T) {
	calls := 0
	err := RunWithSpinner(context.Background(), func() error {
		calls++
		return nil
	}, WithTitle("Installing"))

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRunWithSpinner_PropagatesActionError(t *testing.T) {
	want := errors.New("npm install failed")
	err := RunWithSpinner(context.Background(), func() error { return want })

	assert.ErrorIs(t, err, want)
}
