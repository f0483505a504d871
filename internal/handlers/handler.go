package handlers

import (
	"log/slog"

	"shortr/internal/config"
	"shortr/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg            config.Config
	logger         *slog.Logger
	db             *gorm.DB
	rdb            *redis.Client
	linkService    *services.LinkService
	auditService   *services.AuditService
	refreshService *services.RefreshService
	qrService      *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	linkService *services.LinkService,
	auditService *services.AuditService,
	refreshService *services.RefreshService,
	qrService *services.QRService,
) *Handler {
	return &Handler{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		rdb:            rdb,
		linkService:    linkService,
		auditService:   auditService,
		refreshService: refreshService,
		qrService:      qrService,
	}
}
