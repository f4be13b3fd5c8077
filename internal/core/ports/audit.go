package ports

import (
	"context"

	"github.com/springcrm/crm-api/internal/core/domain"
)

// AuditRepository persists the security audit trail.
type AuditRepository interface {
	InsertAuthEvent(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink accepts audit events without blocking the caller.
type AuditSink interface {
	Record(event domain.AuthEvent)
}
