package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Orders outlive their user in no direction: the FK must RESTRICT so that
// deleting a user with order history fails instead of nulling user_id, which
// order listings could not scan.
func TestUserOrdersConstraintRestrictsDelete(t *testing.T) {
	field, ok := reflect.TypeOf(User{}).FieldByName("Orders")
	require.True(t, ok)
	assert.Contains(t, field.Tag.Get("gorm"), "OnDelete:RESTRICT")

	field, ok = reflect.TypeOf(Order{}).FieldByName("UserID")
	require.True(t, ok)
	assert.Contains(t, field.Tag.Get("gorm"), "not null")
}

func TestUserCartCascadesOnDelete(t *testing.T) {
	field, ok := reflect.TypeOf(User{}).FieldByName("Cart")
	require.True(t, ok)
	assert.Contains(t, field.Tag.Get("gorm"), "OnDelete:CASCADE")
}

func TestSetPasswordAndMatch(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("hunter22"))

	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.True(t, u.MatchPassword("hunter22"))
	assert.False(t, u.MatchPassword("hunter23"))
}

func TestAddressComplete(t *testing.T) {
	full := Address{Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US"}
	assert.True(t, full.Complete())

	partial := full
	partial.PostalCode = ""
	assert.False(t, partial.Complete())

	assert.False(t, Address{}.Complete())
}
