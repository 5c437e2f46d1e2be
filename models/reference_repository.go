package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrEmptyReferenceData is returned when seeding is asked to insert nothing.
var ErrEmptyReferenceData = errors.New("reference data is empty")

type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{
		db: db,
	}
}

// Migrate creates the reference tables. No foreign keys are declared because
// categories and products may reference rows that do not exist.
func (r *ReferenceRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&User{}, &Category{}, &Product{}); err != nil {
		return fmt.Errorf("migrate reference tables: %w", err)
	}
	return nil
}

// Seed inserts data in a single transaction when all three tables are empty.
// It reports whether anything was inserted.
func (r *ReferenceRepository) Seed(ctx context.Context, data *ReferenceData) (bool, error) {
	if data.IsEmpty() {
		return false, ErrEmptyReferenceData
	}

	seeded, err := r.hasRows(ctx)
	if err != nil {
		return false, err
	}
	if seeded {
		return false, nil
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(data.Users) > 0 {
			if err := tx.Create(&data.Users).Error; err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
		}
		if len(data.Categories) > 0 {
			if err := tx.Create(&data.Categories).Error; err != nil {
				return fmt.Errorf("insert categories: %w", err)
			}
		}
		if len(data.Products) > 0 {
			if err := tx.Create(&data.Products).Error; err != nil {
				return fmt.Errorf("insert products: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ReferenceRepository) hasRows(ctx context.Context) (bool, error) {
	for _, table := range []any{&User{}, &Category{}, &Product{}} {
		var count int64
		if err := r.db.WithContext(ctx).Model(table).Count(&count).Error; err != nil {
			return false, fmt.Errorf("count reference rows: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// Load reads all three tables ordered by id.
func (r *ReferenceRepository) Load(ctx context.Context) (*ReferenceData, error) {
	data := &ReferenceData{}
	db := r.db.WithContext(ctx)

	if err := db.Order("id").Find(&data.Users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if err := db.Order("id").Find(&data.Categories).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if err := db.Order("id").Find(&data.Products).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return data, nil
}

// MemorySource serves a fixed data set.
type MemorySource struct {
	Data *ReferenceData
}

func (s MemorySource) Load(ctx context.Context) (*ReferenceData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Data, nil
}
