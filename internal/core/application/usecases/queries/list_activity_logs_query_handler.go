package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogView struct {
	ID          uuid.UUID       `json:"id"`
	ActorID     *uuid.UUID      `json:"actor_id,omitempty"`
	ActorName   *string         `json:"actor_name,omitempty"`
	Action      string          `json:"action"`
	Description string          `json:"description"`
	SubjectType string          `json:"subject_type"`
	SubjectID   uuid.UUID       `json:"subject_id"`
	Properties  json.RawMessage `json:"properties"`
	CreatedAt   time.Time       `json:"created_at"`
}

type activityLogRow struct {
	ID          uuid.UUID
	ActorID     *uuid.UUID
	ActorName   *string
	Action      string
	Description string
	SubjectType string
	SubjectID   uuid.UUID
	Properties  string
	CreatedAt   time.Time
}

type ListActivityLogsQueryHandler struct {
	db *gorm.DB
}

func NewListActivityLogsQueryHandler(db *gorm.DB) ListActivityLogsQueryHandler {
	return ListActivityLogsQueryHandler{db: db}
}

func (h ListActivityLogsQueryHandler) Handle(
	ctx context.Context,
	query ListActivityLogsQuery,
) ([]ActivityLogView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []activityLogRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.actor_id,
			u.name AS actor_name,
			a.action,
			a.description,
			a.subject_type,
			a.subject_id,
			a.properties::text AS properties,
			a.created_at
		FROM activity_logs a
		LEFT JOIN users u ON u.id = a.actor_id
		ORDER BY a.created_at DESC, a.id
		LIMIT ?`, query.Limit()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	logs := make([]ActivityLogView, 0, len(rows))
	for _, r := range rows {
		logs = append(logs, ActivityLogView{
			ID:          r.ID,
			ActorID:     r.ActorID,
			ActorName:   r.ActorName,
			Action:      r.Action,
			Description: r.Description,
			SubjectType: r.SubjectType,
			SubjectID:   r.SubjectID,
			Properties:  json.RawMessage(r.Properties),
			CreatedAt:   r.CreatedAt,
		})
	}
	return logs, nil
}
