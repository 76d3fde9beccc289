package input

import (
	"context"

	"pontbot/internal/domain/entities"
)

// MessageDispatcher is the relay use case the chat transport drives.
type MessageDispatcher interface {
	Dispatch(ctx context.Context, msg *entities.Message) error
}
