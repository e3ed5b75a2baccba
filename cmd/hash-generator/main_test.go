package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hoorayhoa/hoa-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	require.NoError(t, run(&out, hasher, []string{"first", "тест123"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.NoError(t, hasher.Compare(lines[0], "first"))
	assert.NoError(t, hasher.Compare(lines[1], "тест123"))
}

func TestRun_PasswordTooLong(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(&out, auth.NewBcryptHasher(bcrypt.MinCost), []string{strings.Repeat("x", 73)})

	assert.ErrorIs(t, err, auth.ErrPasswordTooLong)
	assert.Empty(t, out.String())
}
