package errx

import (
	"errors"

	"github.com/redis/go-redis/v9"
)

// WrapRedis maps redis errors to the unified Error type. A missing key is a
// NotFound, anything else is a storage failure.
func WrapRedis(err error) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, redis.Nil) {
		return New(err, KindNotFound, StorageNotFoundMessage)
	}

	return New(err, KindCredentialUnavailable, StorageErrorMessage)
}
