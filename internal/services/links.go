package services

import (
	"errors"
	"time"

	"shortr/internal/models"
	"shortr/pkg/utils"

	"gorm.io/gorm"
)

var (
	// ErrLinkNotFound covers both "does not exist" and "owned by someone
	// else"; the two are deliberately indistinguishable so owner-scoped
	// operations never leak the existence of another user's link.
	ErrLinkNotFound       = errors.New("link not found")
	ErrDuplicateShortCode = errors.New("short code already taken")
	ErrCodeSpaceExhausted = errors.New("could not allocate a free short code")
)

const (
	generatedCodeLength = 6
	maxCodeAttempts     = 10
)

// UpdateLinkParams carries the fields to change; nil means "keep current".
type UpdateLinkParams struct {
	URL       *string
	ShortCode *string
}

// LinkService is the sole query surface over the links table.
type LinkService struct {
	db            *gorm.DB
	auditService  *AuditService
	codeGenerator func(int) string
}

func NewLinkService(db *gorm.DB, auditService *AuditService) *LinkService {
	return &LinkService{
		db:            db,
		auditService:  auditService,
		codeGenerator: utils.GenerateShortCode,
	}
}

// ListByOwner returns all of an owner's links, newest first.
func (s *LinkService) ListByOwner(ownerID string) ([]models.Link, error) {
	links := []models.Link{}
	if err := s.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetByShortCode is the public lookup used by the redirect path. The code
// is matched verbatim; there is no owner filter.
func (s *LinkService) GetByShortCode(shortCode string) (*models.Link, error) {
	var link models.Link
	err := s.db.Where("short_code = ?", shortCode).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByIDForOwner filters by id AND owner in one query, so a wrong owner
// and a missing row both come back as ErrLinkNotFound.
func (s *LinkService) GetByIDForOwner(id uint, ownerID string) (*models.Link, error) {
	var link models.Link
	err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Create inserts a new link. An empty customCode means "generate one".
// The availability pre-check only trims the collision window; the unique
// index decides, and its violation is reported as ErrDuplicateShortCode.
func (s *LinkService) Create(ownerID string, url string, customCode string, clientIP string) (*models.Link, error) {
	var shortCode string
	if customCode != "" {
		if err := s.checkAvailable(customCode); err != nil {
			return nil, err
		}
		shortCode = customCode
	} else {
		code, err := s.generateUniqueCode()
		if err != nil {
			return nil, err
		}
		shortCode = code
	}

	now := time.Now()
	link := models.Link{
		OwnerID:   ownerID,
		ShortCode: shortCode,
		URL:       url,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race between pre-check and insert.
			return nil, ErrDuplicateShortCode
		}
		return nil, err
	}

	s.auditService.LogAction(ownerID, "CREATE_LINK", link.ShortCode, map[string]interface{}{
		"url": url,
	}, clientIP)

	return &link, nil
}

// Update refetches under the caller's ownership before writing, applies
// only the supplied fields and refreshes updated_at.
func (s *LinkService) Update(id uint, ownerID string, params UpdateLinkParams, clientIP string) (*models.Link, error) {
	link, err := s.GetByIDForOwner(id, ownerID)
	if err != nil {
		return nil, err
	}

	if params.ShortCode != nil && *params.ShortCode != link.ShortCode {
		if err := s.checkAvailable(*params.ShortCode); err != nil {
			return nil, err
		}
		link.ShortCode = *params.ShortCode
	}
	if params.URL != nil {
		link.URL = *params.URL
	}
	link.UpdatedAt = time.Now()

	if err := s.db.Save(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateShortCode
		}
		return nil, err
	}

	s.auditService.LogAction(ownerID, "UPDATE_LINK", link.ShortCode, map[string]interface{}{
		"url": link.URL,
	}, clientIP)

	return link, nil
}

// Delete refetches under the caller's ownership, then removes the row.
func (s *LinkService) Delete(id uint, ownerID string, clientIP string) error {
	link, err := s.GetByIDForOwner(id, ownerID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(link).Error; err != nil {
		return err
	}

	s.auditService.LogAction(ownerID, "DELETE_LINK", link.ShortCode, nil, clientIP)

	return nil
}

func (s *LinkService) checkAvailable(shortCode string) error {
	_, err := s.GetByShortCode(shortCode)
	if err == nil {
		return ErrDuplicateShortCode
	}
	if !errors.Is(err, ErrLinkNotFound) {
		return err
	}
	return nil
}

// generateUniqueCode draws candidates until one is absent from the store,
// bounded at maxCodeAttempts. Exhaustion means the 6-char space is
// saturated or the generator is broken; either way it is a hard stop.
func (s *LinkService) generateUniqueCode() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := s.codeGenerator(generatedCodeLength)
		_, err := s.GetByShortCode(code)
		if errors.Is(err, ErrLinkNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrCodeSpaceExhausted
}
