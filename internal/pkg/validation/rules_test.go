package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestRoleValueRule(t *testing.T) {
	v := newValidator(t)

	type payload struct {
		Role string `validate:"rolevalue"`
	}

	assert.NoError(t, v.Struct(payload{Role: "ADMIN"}))
	assert.NoError(t, v.Struct(payload{Role: "TUTOR"}))
	assert.NoError(t, v.Struct(payload{Role: "STUDENT"}))
	assert.Error(t, v.Struct(payload{Role: "student"}))
	assert.Error(t, v.Struct(payload{Role: "TEACHER"}))
	assert.Error(t, v.Struct(payload{Role: ""}))
}

func TestHashtagRule(t *testing.T) {
	v := newValidator(t)

	type payload struct {
		Tags []string `validate:"dive,hashtag"`
	}

	assert.NoError(t, v.Struct(payload{Tags: []string{"golang", "math_101", "Physics"}}))
	assert.Error(t, v.Struct(payload{Tags: []string{"#golang"}}))
	assert.Error(t, v.Struct(payload{Tags: []string{"has space"}}))
	assert.Error(t, v.Struct(payload{Tags: []string{""}}))
}
