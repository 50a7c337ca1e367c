package domain

import "errors"

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrInvalidReview      = errors.New("invalid review")
	ErrMissingAccessToken = errors.New("missing access token")
	ErrRejected           = errors.New("request rejected by backend")
)
