// Package activityrepo stores the audit trail in the activity_logs table.
package activityrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"icetube/internal/core/domain/model/activity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogDTO is the row layout of activity_logs. Properties hold a JSON
// object.
type ActivityLogDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ActorID     *uuid.UUID `gorm:"type:uuid;index"`
	Action      string     `gorm:"type:varchar(64);not null;index"`
	Description string
	SubjectType string    `gorm:"type:varchar(32);not null;index:idx_activity_logs_subject"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_logs_subject"`
	Properties  string    `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (ActivityLogDTO) TableName() string {
	return "activity_logs"
}

// GormActivityLogger implements ports.ActivityLogger. It writes outside any
// unit of work: entries are appended after the business transaction commits.
type GormActivityLogger struct {
	db *gorm.DB
}

func NewGormActivityLogger(db *gorm.DB) *GormActivityLogger {
	return &GormActivityLogger{db: db}
}

func (l *GormActivityLogger) Log(ctx context.Context, entry activity.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	props, err := json.Marshal(entry.Properties())
	if err != nil {
		return fmt.Errorf("marshal activity properties: %w", err)
	}

	var actorID *uuid.UUID
	if a := entry.ActorID(); a != nil {
		raw := a.Value()
		actorID = &raw
	}

	dto := ActivityLogDTO{
		ID:          entry.ID().Value(),
		ActorID:     actorID,
		Action:      string(entry.Action()),
		Description: entry.Description(),
		SubjectType: entry.SubjectType(),
		SubjectID:   entry.SubjectID().Value(),
		Properties:  string(props),
		CreatedAt:   entry.CreatedAt(),
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}
