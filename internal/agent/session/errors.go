package session

import "errors"

var ErrRateLimited = errors.New("rate limit exceeded")
