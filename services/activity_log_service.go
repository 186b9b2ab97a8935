package services

import (
	"context"
	"encoding/json"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/config"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ActivityRecorder interface {
	Record(ctx context.Context, entry *models.ActivityLog) error
}

// ActivityLogService writes admin activity entries. Failures are logged and
// never fail the admin request that produced them.
type ActivityLogService struct {
	recorder ActivityRecorder
}

func NewActivityLogService(recorder ActivityRecorder) *ActivityLogService {
	return &ActivityLogService{recorder: recorder}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	AdminID      uuid.UUID
	AdminEmail   string
	Action       string // created_product, updated_order ...
	ResourceType string
	ResourceID   string
	Path         string
	Payload      any
	StatusCode   int
	IPAddress    string
	UserAgent    string
}

func (s *ActivityLogService) LogActivity(req LogActivityRequest) {
	if req.AdminID == uuid.Nil {
		log.Warn().Str("component", "activity").Str("action", req.Action).Msg("admin id missing, entry skipped")
		return
	}

	status := models.StatusSuccess
	if req.StatusCode >= 400 {
		status = models.StatusFailed
	}

	entry := models.ActivityLog{
		AdminID:      req.AdminID,
		AdminEmail:   req.AdminEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Path:         req.Path,
		Status:       status,
		StatusCode:   req.StatusCode,
		IPAddress:    req.IPAddress,
		UserAgent:    req.UserAgent,
	}
	if req.Payload != nil {
		if data, err := json.Marshal(req.Payload); err == nil {
			entry.Payload = data
		} else {
			log.Warn().Err(err).Str("component", "activity").Msg("failed to marshal payload")
		}
	}

	// the request context may already be cancelled once the response is written
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := s.recorder.Record(ctx, &entry); err != nil {
		log.Error().Err(err).Str("component", "activity").Str("action", req.Action).Msg("failed to record activity")
		return
	}
	log.Info().Str("component", "activity").
		Str("action", req.Action).
		Str("resource_id", req.ResourceID).
		Str("admin", req.AdminEmail).
		Str("status", status).
		Msg("admin activity")
}
