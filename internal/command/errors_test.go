package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownError_MessageAndExitCode(t *testing.T) {
	t.Parallel()
	err := &UnknownError{Path: []string{"site", "nope"}}

	assert.Equal(t, `unknown command "site nope"`, err.Error())
	assert.Equal(t, 1, err.ExitCode())
}

func TestDuplicateError_Message(t *testing.T) {
	t.Parallel()
	err := &DuplicateError{Path: []string{"site", "list"}}

	assert.Equal(t, `command "site list" already registered`, err.Error())
}

func TestError_CarriesCodeAndParams(t *testing.T) {
	t.Parallel()
	err := NewError(3, "site is not configured", "site", "eu-west")

	assert.Equal(t, "site is not configured", err.Error())
	assert.Equal(t, 3, err.ExitCode())
	assert.Equal(t, []any{"site", "eu-west"}, err.Params)
}
