package validation

import (
	"testing"

	"gamerental/internal/app/apperr"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountRequest struct {
	StoreID   string `json:"store_id" binding:"required"`
	BirthDate string `json:"birth_date" binding:"omitempty,birthdate"`
	ClientID  uint   `json:"client_id" binding:"required,gt=0"`
}

func TestRegisterIsIdempotent(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}

func TestFromBindErrorValidationFields(t *testing.T) {
	require.NoError(t, Register())

	var req accountRequest
	err := binding.JSON.BindBody([]byte(`{"birth_date":"00/10/2000","client_id":3}`), &req)
	require.Error(t, err)

	e, ok := apperr.From(FromBindError(err))
	require.True(t, ok)
	assert.Equal(t, apperr.KindInvalid, e.Kind)
	assert.Equal(t, "required", e.Fields["store_id"])
	assert.Equal(t, "birthdate", e.Fields["birth_date"])
	assert.Contains(t, e.Message, "cannot be zero")
}

func TestFromBindErrorValidBody(t *testing.T) {
	require.NoError(t, Register())

	var req accountRequest
	err := binding.JSON.BindBody([]byte(`{"store_id":"abc","birth_date":"2001-02-03","client_id":1}`), &req)
	assert.NoError(t, err)
	assert.NoError(t, FromBindError(err))
}

func TestFromBindErrorMalformed(t *testing.T) {
	var req accountRequest
	err := binding.JSON.BindBody([]byte(`{"store_id":`), &req)
	require.Error(t, err)

	e, ok := apperr.From(FromBindError(err))
	require.True(t, ok)
	assert.Equal(t, apperr.KindInvalid, e.Kind)
}

func TestFromBindErrorWrongType(t *testing.T) {
	var req accountRequest
	err := binding.JSON.BindBody([]byte(`{"store_id":"x","client_id":"three"}`), &req)
	require.Error(t, err)

	e, ok := apperr.From(FromBindError(err))
	require.True(t, ok)
	assert.Equal(t, "type", e.Fields["client_id"])
}

type statusRequest struct {
	Order   *string `json:"order" binding:"omitempty,orderstatus"`
	License string  `json:"license" binding:"omitempty,licensestatus"`
}

func TestStatusRules(t *testing.T) {
	require.NoError(t, Register())

	var ok statusRequest
	assert.NoError(t, binding.JSON.BindBody([]byte(`{"order":"Awaiting Payment","license":"Rented"}`), &ok))

	var bad statusRequest
	err := binding.JSON.BindBody([]byte(`{"order":"Paid","license":"rented"}`), &bad)
	require.Error(t, err)
	e, isTyped := apperr.From(FromBindError(err))
	require.True(t, isTyped)
	assert.Equal(t, "orderstatus", e.Fields["order"])
	assert.Equal(t, "licensestatus", e.Fields["license"])
}
