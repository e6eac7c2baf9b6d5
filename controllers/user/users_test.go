package userControllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUpdateProfileDuplicateEmailIsConflict(t *testing.T) {
	status, message := updateProfileStatus(gorm.ErrDuplicatedKey)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email already in use", message)
}

func TestUpdateProfileOtherErrorsAreInternal(t *testing.T) {
	status, _ := updateProfileStatus(errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestDeleteUserWithOrdersIsConflict(t *testing.T) {
	status, message := deleteUserStatus(gorm.ErrForeignKeyViolated)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Cannot delete a user with orders", message)
}

func TestDeleteUserOtherErrorsAreInternal(t *testing.T) {
	status, _ := deleteUserStatus(errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, status)
}
