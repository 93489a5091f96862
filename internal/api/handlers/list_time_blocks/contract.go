package list_time_blocks

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListTimeBlocks(ctx context.Context, salonID int64, professionalID *int64) (*models.TimeBlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
