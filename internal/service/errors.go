package service

import "errors"

// Recoverable errors raised below the handler layer. The handlers translate
// these into chat messages or a log line; store-layer failures propagate as
// hard errors instead.
var (
	ErrContentNotFound  = errors.New("referenced step missing from content graph")
	ErrNameTaken        = errors.New("display name already taken")
	ErrStalePosition    = errors.New("stored live position too old")
	ErrNoGeofenceTarget = errors.New("no geofence target active")
	ErrMalformedEvent   = errors.New("malformed inbound event")
)
