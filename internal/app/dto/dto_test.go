package dto

import (
	"encoding/json"
	"testing"
	"time"

	"gamerental/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringAcceptsStringOrNumber(t *testing.T) {
	var req struct {
		StoreID FlexString `json:"store_id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"store_id":"abc-1"}`), &req))
	assert.Equal(t, FlexString("abc-1"), req.StoreID)

	require.NoError(t, json.Unmarshal([]byte(`{"store_id":1234567890123}`), &req))
	assert.Equal(t, FlexString("1234567890123"), req.StoreID)

	assert.Error(t, json.Unmarshal([]byte(`{"store_id":true}`), &req))
}

func TestUserResponseHasNoPassword(t *testing.T) {
	user := &ds.User{ID: 1, Name: "Root", Email: "root@example.com", Password: "$2a$10$hash", LevelID: 2, Level: &ds.Level{ID: 2, Name: "Admin"}}

	raw, err := json.Marshal(Map([]ds.User{*user}, NewUserResponse))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$10$hash")
	assert.Contains(t, string(raw), `"name":"Admin"`)
}

func TestAccountResponseFormatsBirthDate(t *testing.T) {
	resp := NewAccountResponse(&ds.DigitalAccount{
		ID:        3,
		StoreID:   "99",
		BirthDate: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, "17/05/1990", resp.BirthDate)
	assert.Nil(t, resp.Client)
}

func TestOrderResponseAlwaysHasLines(t *testing.T) {
	raw, err := json.Marshal(NewOrderResponse(&ds.Order{ID: 1}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"lines":[]`)
}
