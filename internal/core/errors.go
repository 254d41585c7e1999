package core

import "errors"

// Error taxonomy shared across the route layer and the outbound adapters.
// Each kind maps to a distinct HTTP status at the edge.
var (
	// ErrRemoteUnavailable wraps any spreadsheet backend transport or auth
	// failure. Never retried; a single failed call fails the request.
	ErrRemoteUnavailable = errors.New("spreadsheet backend unavailable")

	// ErrEmptyResult is returned when the spreadsheet response carries no
	// data array for the requested ranges.
	ErrEmptyResult = errors.New("spreadsheet returned no data")

	// ErrInvalidToken marks an identity token that failed verification.
	ErrInvalidToken = errors.New("invalid identity token")

	// ErrNotAuthenticated marks a request without a valid session or with
	// an email absent from the allow-list.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotAuthorized marks a session that lacks append rights.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrMalformedRow marks a spreadsheet row of unexpected shape.
	ErrMalformedRow = errors.New("malformed spreadsheet row")

	// ErrMalformedRequest marks a request body that failed validation
	// before reaching business logic.
	ErrMalformedRequest = errors.New("malformed request")
)
