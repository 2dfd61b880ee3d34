package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/kulasio/OneTapp-Backend/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

// wrapErr wraps a driver error, translating connectivity failures into
// domain.ErrStoreUnavailable so callers can treat them as retryable.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
