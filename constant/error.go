package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrEmailExists
	ErrInvalidPassword
	ErrDisplayNameExists
	ErrAlreadyConfirmed
	ErrAccountNotConfirmed
	ErrAlreadySaved
	ErrNotSaved
	ErrNotificationFailed
	ErrForbidden
	// ErrEmailRegistered and ErrDisplayNameTaken reject a registration
	// whose email or display name is already in use. The *Exists kinds
	// are reserved for unique-index violations raised by the database.
	ErrEmailRegistered
	ErrDisplayNameTaken
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrEmailExists:         "email address already registered",
	ErrInvalidPassword:     "password invalid",
	ErrDisplayNameExists:   "agent display name already taken",
	ErrAlreadyConfirmed:    "account already confirmed",
	ErrAccountNotConfirmed: "account not confirmed",
	ErrAlreadySaved:        "listing already saved",
	ErrNotSaved:            "listing has not been saved",
	ErrNotificationFailed:  "confirmation email could not be sent, please request the code again",
	ErrForbidden:           "forbidden",
	ErrEmailRegistered:     "email address already registered",
	ErrDisplayNameTaken:    "agent display name already taken",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrEmailExists:         http.StatusConflict,
	ErrInvalidPassword:     http.StatusBadRequest,
	ErrDisplayNameExists:   http.StatusConflict,
	ErrAlreadyConfirmed:    http.StatusConflict,
	ErrAccountNotConfirmed: http.StatusForbidden,
	ErrAlreadySaved:        http.StatusConflict,
	ErrNotSaved:            http.StatusConflict,
	ErrNotificationFailed:  http.StatusBadGateway,
	ErrForbidden:           http.StatusForbidden,
	ErrEmailRegistered:     http.StatusBadRequest,
	ErrDisplayNameTaken:    http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrEmailExists:         "0005",
	ErrInvalidPassword:     "0006",
	ErrDisplayNameExists:   "0007",
	ErrAlreadyConfirmed:    "0008",
	ErrAccountNotConfirmed: "0009",
	ErrAlreadySaved:        "0010",
	ErrNotSaved:            "0011",
	ErrNotificationFailed:  "0012",
	ErrForbidden:           "0013",
	ErrEmailRegistered:     "0014",
	ErrDisplayNameTaken:    "0015",
}
