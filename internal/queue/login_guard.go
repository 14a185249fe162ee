package queue

import (
	"context"
	"errors"
)

// LoginGuard admits one in-flight login per key. Acquire returns a token identifying
// the holder; a second Acquire for a held key returns ErrAlreadyHeld until the holder
// releases it or its lease expires. Release only removes the lease the token owns.
type LoginGuard interface {
	Acquire(ctx context.Context, key string) (string, error)

	Release(ctx context.Context, key, token string) error
}

var ErrAlreadyHeld = errors.New("guard already held")
