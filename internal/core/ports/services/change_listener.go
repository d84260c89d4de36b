package services

import (
	"context"

	"github.com/SscSPs/event_split_app/internal/core/domain"
)

// ChangeListener is notified after every committed mutation.
// Implementations must not block and must not call back into the services.
type ChangeListener interface {
	OnChange(ctx context.Context, change domain.ChangeEvent)
}
