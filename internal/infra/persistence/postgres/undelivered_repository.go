package postgres

import (
	"context"

	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/repository"
	"geolead/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// undeliveredRepository implements the repository.UndeliveredRepository interface.
type undeliveredRepository struct {
	db *gorm.DB
}

// NewUndeliveredRepository is the constructor for undeliveredRepository.
func NewUndeliveredRepository(db *gorm.DB) repository.UndeliveredRepository {
	return &undeliveredRepository{
		db: db,
	}
}

// CreateUndelivered persists a failed push. Storing the same record twice is a no-op.
func (repo *undeliveredRepository) CreateUndelivered(ctx context.Context, notification *entity.UndeliveredNotification) error {
	notificationM := fromUndeliveredDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required undelivered notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create undelivered notification")
	}

	return nil
}

// fromUndeliveredDomain converts a domain UndeliveredNotification to a GORM model.
func fromUndeliveredDomain(data *entity.UndeliveredNotification) *model.UndeliveredNotificationModel {
	if data == nil {
		return nil
	}

	payload := make(datatypes.JSONMap, len(data.Message.Data))
	for key, value := range data.Message.Data {
		payload[key] = value
	}

	return &model.UndeliveredNotificationModel{
		ID:        data.ID,
		OwnerKind: data.Owner.String(),
		OwnerID:   data.OwnerID,
		Tokens:    data.Tokens,
		Title:     data.Message.Notification.Title,
		Body:      data.Message.Notification.Body,
		Data:      payload,
		ErrorCode: data.ErrorCode,
		Error:     data.Error,
		CreatedAt: data.CreatedAt,
	}
}
