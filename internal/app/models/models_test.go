package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleTutor))
	assert.True(t, ValidRole(RoleStudent))
	assert.False(t, ValidRole("TEACHER"))
	assert.False(t, ValidRole("student"))
	assert.False(t, ValidRole(""))
}

func TestUserHasRole(t *testing.T) {
	tutor := RoleTutor
	approved := &User{Role: &tutor}
	pending := &User{}

	assert.True(t, approved.HasRole(RoleTutor))
	assert.False(t, approved.HasRole(RoleAdmin))
	assert.False(t, pending.HasRole(RoleTutor))
}

func TestCounterpartID(t *testing.T) {
	m := &DirectMessage{SenderID: 1, ReceiverID: 2}
	assert.Equal(t, int64(2), m.CounterpartID(1))
	assert.Equal(t, int64(1), m.CounterpartID(2))
}
