package output

import (
	"context"

	"pontbot/internal/domain/entities"
)

// DispatchAuditor persists the outcome of a finished dispatch.
// Implementations must tolerate being called after the reply was sent;
// their errors are logged by the caller, never surfaced to the chat.
type DispatchAuditor interface {
	RecordDispatch(ctx context.Context, rec *entities.DispatchRecord) error
}
