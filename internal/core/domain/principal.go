package domain

import "time"

// Principal is the identity resolved from a verified bearer token. It lives
// for the duration of a single request and is never persisted; every
// downstream decision (cache key, ownership checks) must use it rather than
// any identifier found in the request body.
type Principal struct {
	Subject   string
	ExpiresAt time.Time
}
