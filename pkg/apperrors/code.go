package apperrors

import "net/http"

// ErrorCode represents a unique error identifier
type ErrorCode int

// Error code ranges:
// 10000-10999: System & common errors
// 11000-11999: Player & category errors
// 12000-12999: Challenge lifecycle errors
const (
	Success ErrorCode = 10000

	InternalServerError ErrorCode = 10001
	InvalidParams       ErrorCode = 10002
	NotFound            ErrorCode = 10003
	AlreadyExists       ErrorCode = 10004

	DatabaseError ErrorCode = 10100

	ValidationFailed ErrorCode = 10300

	PlayerNotFound   ErrorCode = 11000
	UnknownPlayer    ErrorCode = 11001
	CategoryNotFound ErrorCode = 11100

	ChallengeNotFound         ErrorCode = 12000
	ChallengerNotParticipant  ErrorCode = 12001
	ChallengerWithoutCategory ErrorCode = 12002
	WinnerNotParticipant      ErrorCode = 12003
	InvalidTransition         ErrorCode = 12100
	ChallengeClosed           ErrorCode = 12101
	StaleChallenge            ErrorCode = 12102
	ChallengeLocked           ErrorCode = 12103
)

var errorMessages = map[ErrorCode]string{
	Success:             "Success",
	InternalServerError: "Internal server error",
	InvalidParams:       "Invalid parameters",
	NotFound:            "Resource not found",
	AlreadyExists:       "Resource already exists",
	DatabaseError:       "Database error",
	ValidationFailed:    "Validation failed",

	PlayerNotFound:   "Player not found",
	UnknownPlayer:    "Unknown player",
	CategoryNotFound: "Category not found",

	ChallengeNotFound:         "Challenge not found",
	ChallengerNotParticipant:  "The challenger must be a match player",
	ChallengerWithoutCategory: "The challenger must be registered in a category",
	WinnerNotParticipant:      "The winner must be a match player",
	InvalidTransition:         "Invalid challenge status transition",
	ChallengeClosed:           "Challenge is already closed",
	StaleChallenge:            "Challenge was modified concurrently, retry the request",
	ChallengeLocked:           "Challenge is being modified by another request",
}

// Message returns the default message for the error code
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// HTTPStatus returns the HTTP status code the error code maps to
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case Success:
		return http.StatusOK
	case InvalidParams, ValidationFailed, UnknownPlayer,
		ChallengerNotParticipant, ChallengerWithoutCategory, WinnerNotParticipant:
		return http.StatusBadRequest
	case NotFound, PlayerNotFound, CategoryNotFound, ChallengeNotFound:
		return http.StatusNotFound
	case AlreadyExists, InvalidTransition, ChallengeClosed, StaleChallenge, ChallengeLocked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
