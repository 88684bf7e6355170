package interfaces

import (
	"context"
	"xtagy_banho/internal/domain/entities"
)

// IEventLogRepository appends to the analytics event log.

type IEventLogRepository interface {
	Append(ctx context.Context, ev entities.AnalyticsEvent) error
	ListByCompany(ctx context.Context, companyID string) ([]entities.AnalyticsEvent, error)
}
