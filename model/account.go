package model

import (
	"fmt"
	"time"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
)

// AccountEntity represents the account table entity
type AccountEntity struct {
	ID               uint64        `db:"id" json:"id"`
	Email            string        `db:"email" json:"email"`
	PasswordHash     string        `db:"password_hash" json:"-"`
	FirstName        string        `db:"first_name" json:"first_name"`
	LastName         string        `db:"last_name" json:"last_name"`
	Role             constant.Role `db:"role" json:"role"`
	IsConfirmed      bool          `db:"is_confirmed" json:"is_confirmed"`
	ConfirmationCode int           `db:"confirmation_code" json:"-"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time    `db:"updated_at" json:"updated_at,omitempty"`
}

func (a *AccountEntity) State() constant.AccountState {
	if a.IsConfirmed {
		return constant.AccountStateConfirmed
	}
	return constant.AccountStateUnconfirmed
}

func (a *AccountEntity) ImageURL() string {
	return fmt.Sprintf("https://avatars.dicebear.com/api/initials/%s+%s.svg", a.FirstName, a.LastName)
}

// AgentEntity represents the agent table entity
type AgentEntity struct {
	AccountID   uint64 `db:"account_id" json:"-"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
	DisplayName string `db:"display_name" json:"display_name"`
}

// AccountFilter for querying accounts
type AccountFilter struct {
	ID               uint64
	Email            string
	ConfirmationCode int
}

type AgentFilter struct {
	AccountID   uint64
	DisplayName string
}

// RegisterRequest for customer registration
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,notblank,max=150"`
	LastName  string `json:"last_name" validate:"required,notblank,max=150"`
}

// RegisterAgentRequest for agent registration
type RegisterAgentRequest struct {
	RegisterRequest
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
	DisplayName string `json:"display_name" validate:"required,notblank,max=150"`
}

type RegisterResponse struct {
	ID          uint64        `json:"id"`
	Email       string        `json:"email"`
	Role        constant.Role `json:"role"`
	IsConfirmed bool          `json:"is_confirmed"`
}

type ResendConfirmationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmAccountRequest struct {
	ConfirmationCode int `json:"confirmation_code" validate:"required"`
}

// LoginRequest for account login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Email string        `json:"email"`
	Role  constant.Role `json:"role"`
	Token string        `json:"token"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	AccountID uint64
	Role      constant.Role
}

type AccountResponse struct {
	ID          uint64        `json:"id"`
	Email       string        `json:"email"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	ImageURL    string        `json:"image_url"`
	Role        constant.Role `json:"role"`
	IsConfirmed bool          `json:"is_confirmed"`
	CreatedAt   time.Time     `json:"date_joined"`
}

type ProfileResponse struct {
	AccountResponse
	Agent *AgentEntity `json:"agent,omitempty"`
}

func NewAccountResponse(a *AccountEntity) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		ImageURL:    a.ImageURL(),
		Role:        a.Role,
		IsConfirmed: a.IsConfirmed,
		CreatedAt:   a.CreatedAt,
	}
}
