package catalog

import "errors"

// The client is contractually limited to returning errors matching one of
// these sentinels. Callers classify with errors.Is; wrapped detail (server
// messages, status codes, transport causes) stays available via Error().
var (
	ErrValidation     = errors.New("invalid request parameters")
	ErrAuthentication = errors.New("authentication failed")
	ErrNotFound       = errors.New("resource not found")
	ErrServer         = errors.New("server error")
	ErrConnection     = errors.New("connection failed")
)
