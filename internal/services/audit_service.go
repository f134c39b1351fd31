package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// atomicityReporter is the part of the unit of work the audit trail reads.
type atomicityReporter interface {
	SupportsTransactions() bool
}

type auditService struct {
	db   *gorm.DB
	unit atomicityReporter
}

// NewAuditService creates an AuditServicer. When unit is non-nil every
// record carries an "atomic" flag so writes made in degraded mode can be
// told apart later.
func NewAuditService(db *gorm.DB, unit atomicityReporter) AuditServicer {
	return &auditService{db: db, unit: unit}
}

// Log records an audit event. Failures are logged and swallowed; the
// mutation being audited has already committed.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	record := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      s.encodeChanges(action, changes),
	}

	if err := s.db.Create(record).Error; err != nil {
		logger.Get().Errorw("audit write failed",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

func (s *auditService) encodeChanges(action string, changes map[string]interface{}) string {
	if s.unit != nil {
		merged := make(map[string]interface{}, len(changes)+1)
		for k, v := range changes {
			merged[k] = v
		}
		merged["atomic"] = s.unit.SupportsTransactions()
		changes = merged
	}
	if changes == nil {
		return ""
	}

	data, err := json.Marshal(changes)
	if err != nil {
		logger.Get().Errorw("audit changes not serializable", "error", err, "action", action)
		return "{}"
	}
	return string(data)
}
