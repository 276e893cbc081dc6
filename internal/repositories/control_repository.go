package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"nistq/internal/models/db_models"
)

type ControlRepositoryInterface interface {
	ListFamilies(ctx context.Context) ([]db_models.ControlFamily, error)
	GetFamilyByCode(ctx context.Context, code string) (*db_models.ControlFamily, error)
	GetControlByCode(ctx context.Context, code string) (*db_models.Control, error)
	CreateFamily(ctx context.Context, family *db_models.ControlFamily) error
}

func NewControlRepository(db *gorm.DB) ControlRepositoryInterface {
	return &ControlRepository{db: db}
}

type ControlRepository struct {
	db *gorm.DB
}

func (c ControlRepository) ListFamilies(ctx context.Context) ([]db_models.ControlFamily, error) {
	var families []db_models.ControlFamily
	err := c.db.WithContext(ctx).
		Preload("Controls", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index, code")
		}).
		Order("order_index, code").
		Find(&families).Error
	if err != nil {
		return nil, err
	}
	return families, nil
}

func (c ControlRepository) GetFamilyByCode(ctx context.Context, code string) (*db_models.ControlFamily, error) {
	var family db_models.ControlFamily
	err := c.db.WithContext(ctx).Preload("Controls").Where("code = ?", code).First(&family).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &family, nil
}

func (c ControlRepository) GetControlByCode(ctx context.Context, code string) (*db_models.Control, error) {
	var control db_models.Control
	err := c.db.WithContext(ctx).Where("code = ?", code).First(&control).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &control, nil
}

func (c ControlRepository) CreateFamily(ctx context.Context, family *db_models.ControlFamily) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(family).Error
	})
}
