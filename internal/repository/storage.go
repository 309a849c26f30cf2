package repository

import (
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wilbyang/reserver/internal/domain"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// storageErr keeps the driver failure readable while letting callers match
// on domain.ErrStorageUnavailable. Nothing was mutated on this path, so the
// whole operation is retryable.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
}
