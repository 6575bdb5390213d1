package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorized
	ErrEmailExists
	ErrInvalidCredentials
	ErrUserNotFound
	ErrPetUnavailable
	ErrInvalidAdoptionStatus
	ErrInvalidOrderStatus
	ErrInvalidAppointmentStatus
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                  "success",
	ErrInternal:                 "server error",
	ErrNotFound:                 "data not found",
	ErrInvalidRequest:           "invalid request",
	ErrUnauthorized:             "unauthorized request",
	ErrEmailExists:              "email already registered",
	ErrInvalidCredentials:       "invalid credentials",
	ErrUserNotFound:             "user not found",
	ErrPetUnavailable:           "pet is not available for adoption",
	ErrInvalidAdoptionStatus:    "adoption is not in a pending state",
	ErrInvalidOrderStatus:       "order status transition not allowed",
	ErrInvalidAppointmentStatus: "appointment status transition not allowed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                  http.StatusOK,
	ErrInternal:                 http.StatusInternalServerError,
	ErrNotFound:                 http.StatusNotFound,
	ErrInvalidRequest:           http.StatusBadRequest,
	ErrUnauthorized:             http.StatusUnauthorized,
	ErrEmailExists:              http.StatusConflict,
	ErrInvalidCredentials:       http.StatusBadRequest,
	ErrUserNotFound:             http.StatusNotFound,
	ErrPetUnavailable:           http.StatusConflict,
	ErrInvalidAdoptionStatus:    http.StatusConflict,
	ErrInvalidOrderStatus:       http.StatusConflict,
	ErrInvalidAppointmentStatus: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                  "0000",
	ErrInternal:                 "0001",
	ErrNotFound:                 "0002",
	ErrInvalidRequest:           "0003",
	ErrUnauthorized:             "0004",
	ErrEmailExists:              "0005",
	ErrInvalidCredentials:       "0006",
	ErrUserNotFound:             "0007",
	ErrPetUnavailable:           "0008",
	ErrInvalidAdoptionStatus:    "0009",
	ErrInvalidOrderStatus:       "0010",
	ErrInvalidAppointmentStatus: "0011",
}
