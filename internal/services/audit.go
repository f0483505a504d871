package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shortr/internal/models"

	"gorm.io/gorm"
)

// AuditService records mutations best-effort through a buffered channel;
// a full channel drops the entry rather than blocking the request.
type AuditService struct {
	db     *gorm.DB
	logger *slog.Logger
	ch     chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger) *AuditService {
	return &AuditService{
		db:     db,
		logger: logger,
		ch:     make(chan models.AuditLog, 100),
	}
}

func (s *AuditService) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry := <-s.ch:
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "error", err)
			}
		}
	}
}

func (s *AuditService) LogAction(ownerID string, action, entityID string, details interface{}, ip string) {
	detailBytes, _ := json.Marshal(details)

	entry := models.AuditLog{
		OwnerID:   ownerID,
		Action:    action,
		EntityID:  entityID,
		Details:   string(detailBytes),
		IPAddress: ip,
		Timestamp: time.Now(),
	}

	select {
	case s.ch <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping log", "action", action)
	}
}
