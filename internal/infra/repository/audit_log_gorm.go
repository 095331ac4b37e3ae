package repository

import (
	"context"
	"time"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"gorm.io/gorm"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type auditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) repo.AuditLogRepository {
	return &auditLogGormRepository{db: db}
}

func (r *auditLogGormRepository) Create(ctx context.Context, log model.AuditLog) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(&log).Error
}

// List returns newest first.
func (r *auditLogGormRepository) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	q := r.db.WithContext(ctx).Model(&model.AuditLog{})

	conds := []struct {
		on    bool
		query string
		arg   func() interface{}
	}{
		{f.ActorUserID != nil, "actor_user_id = ?", func() interface{} { return *f.ActorUserID }},
		{f.Action != nil, "action = ?", func() interface{} { return *f.Action }},
		{f.ResourceType != nil, "resource_type = ?", func() interface{} { return *f.ResourceType }},
		{f.ResourceID != nil, "resource_id = ?", func() interface{} { return *f.ResourceID }},
		{f.CreatedFrom != nil, "created_at >= ?", func() interface{} { return *f.CreatedFrom }},
		{f.CreatedTo != nil, "created_at <= ?", func() interface{} { return *f.CreatedTo }},
	}
	for _, c := range conds {
		if c.on {
			q = q.Where(c.query, c.arg())
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	logs := []model.AuditLog{}
	if err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
