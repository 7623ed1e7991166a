package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ============ Envelope ============

const (
	KindSuccess = "success"
	KindWarning = "warning"
	KindError   = "error"
)

// Envelope is the answer for every outcome without a payload.
type Envelope struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	ID      uint              `json:"id,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// FlexString accepts a JSON string or number and keeps it as text.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// ============ Auth ============

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ============ Clients ============

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Email    string `json:"email" binding:"omitempty,email,max=120"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
	Document string `json:"document" binding:"omitempty,max=20"`
}

type UpdateClientRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=120"`
	Email    *string `json:"email" binding:"omitempty,email,max=120"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	Document *string `json:"document" binding:"omitempty,max=20"`
}

// ============ Platforms / Levels ============

type NameRequest struct {
	Name string `json:"name" binding:"required,max=60"`
}

// ============ Games ============

type CreateGameRequest struct {
	Name       string `json:"name" binding:"required,max=150"`
	PlatformID uint   `json:"platform_id" binding:"required,gt=0"`
}

type UpdateGameRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=150"`
	PlatformID *uint   `json:"platform_id" binding:"omitempty,gt=0"`
}

// ============ Licenses ============

type CreateLicenseRequest struct {
	GameID           uint    `json:"game_id" binding:"required,gt=0"`
	Status           string  `json:"status" binding:"omitempty,licensestatus"`
	Type             string  `json:"type" binding:"omitempty,max=30"`
	Price            float64 `json:"price" binding:"gte=0"`
	DigitalAccountID *uint   `json:"digital_account_id" binding:"omitempty,gt=0"`
}

type UpdateLicenseRequest struct {
	GameID           *uint    `json:"game_id" binding:"omitempty,gt=0"`
	Status           *string  `json:"status" binding:"omitempty,licensestatus"`
	Type             *string  `json:"type" binding:"omitempty,max=30"`
	Price            *float64 `json:"price" binding:"omitempty,gte=0"`
	DigitalAccountID *uint    `json:"digital_account_id" binding:"omitempty,gt=0"`
}

// ============ Digital accounts ============

type CreateAccountRequest struct {
	StoreID   FlexString `json:"store_id" binding:"required,max=100"`
	Email     string     `json:"email" binding:"omitempty,email,max=120"`
	ClientID  uint       `json:"client_id" binding:"required,gt=0"`
	BirthDate string     `json:"birth_date" binding:"required,birthdate"`
}

type UpdateAccountRequest struct {
	StoreID   *FlexString `json:"store_id" binding:"omitempty,min=1,max=100"`
	Email     *string     `json:"email" binding:"omitempty,email,max=120"`
	ClientID  *uint       `json:"client_id" binding:"omitempty,gt=0"`
	BirthDate *string     `json:"birth_date" binding:"omitempty,birthdate"`
}

// ============ Users ============

type CreateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required,max=72"`
	LevelID  uint   `json:"level_id" binding:"required,gt=0"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=120"`
	Password *string `json:"password" binding:"omitempty,min=1,max=72"`
	LevelID  *uint   `json:"level_id" binding:"omitempty,gt=0"`
}

// ============ Orders ============

type CreateOrderRequest struct {
	ClientID   uint    `json:"client_id" binding:"required,gt=0"`
	Value      float64 `json:"value" binding:"gte=0"`
	LicenseIDs []uint  `json:"license_ids" binding:"required,min=1,unique,dive,gt=0"`
}

type UpdateOrderRequest struct {
	Value  *float64 `json:"value" binding:"omitempty,gte=0"`
	Status *string  `json:"status" binding:"omitempty,orderstatus"`
}
