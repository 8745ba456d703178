package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// taxonomyService owns the category and subcategory tables.
type taxonomyService struct {
	db    *gorm.DB
	locks *StoreLocks
}

// NewTaxonomyService creates a new TaxonomyServicer.
func NewTaxonomyService(db *gorm.DB, locks *StoreLocks) TaxonomyServicer {
	return &taxonomyService{db: db, locks: locks}
}

// GetTaxonomy returns every category with its subcategories, both in
// insertion order.
func (s *taxonomyService) GetTaxonomy() ([]models.Category, error) {
	s.locks.Taxonomy.RLock()
	defer s.locks.Taxonomy.RUnlock()

	var categories []models.Category
	err := s.db.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("position ASC").
		Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// CreateCategory appends a category to the taxonomy.
func (s *taxonomyService) CreateCategory(name string) (*models.Category, error) {
	name = cleanName(name)
	if name == "" {
		return nil, invalid("name", "is required")
	}

	s.locks.Taxonomy.Lock()
	defer s.locks.Taxonomy.Unlock()

	var category *models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.WithMessage(apperrors.ErrDuplicateCategory, fmt.Sprintf("category %q already exists", name))
		}

		var position int
		if err := tx.Model(&models.Category{}).Select("COALESCE(MAX(position), 0)").Scan(&position).Error; err != nil {
			return err
		}

		category = &models.Category{Name: name, Position: position + 1}
		return tx.Create(category).Error
	})
	if err != nil {
		return nil, internal(err)
	}
	category.Subcategories = []models.Subcategory{}
	return category, nil
}

// DeleteCategory removes an empty category. Stored transactions and plan
// rows keep the name they were written with.
func (s *taxonomyService) DeleteCategory(categoryID string) error {
	s.locks.Taxonomy.Lock()
	defer s.locks.Taxonomy.Unlock()

	return internalOrNil(s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ?", categoryID).First(&category).Error; err != nil {
			return notFound(err, apperrors.ErrCategoryNotFound)
		}

		var children int64
		if err := tx.Model(&models.Subcategory{}).Where("category_id = ?", categoryID).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return apperrors.WithMessage(apperrors.ErrCategoryHasChildren,
				fmt.Sprintf("category %q still has %d subcategories", category.Name, children))
		}

		return tx.Delete(&category).Error
	}))
}

// CreateSubcategory appends a subcategory to an existing category.
func (s *taxonomyService) CreateSubcategory(categoryID, name string) (*models.Subcategory, error) {
	name = cleanName(name)
	if name == "" {
		return nil, invalid("name", "is required")
	}

	s.locks.Taxonomy.Lock()
	defer s.locks.Taxonomy.Unlock()

	var sub *models.Subcategory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ?", categoryID).First(&category).Error; err != nil {
			return notFound(err, apperrors.ErrCategoryNotFound)
		}

		var count int64
		if err := tx.Model(&models.Subcategory{}).
			Where("category_id = ? AND name = ?", categoryID, name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.WithMessage(apperrors.ErrDuplicateCategory,
				fmt.Sprintf("subcategory %q already exists under %q", name, category.Name))
		}

		var position int
		if err := tx.Model(&models.Subcategory{}).
			Where("category_id = ?", categoryID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&position).Error; err != nil {
			return err
		}

		sub = &models.Subcategory{CategoryID: categoryID, Name: name, Position: position + 1}
		return tx.Create(sub).Error
	})
	if err != nil {
		return nil, internal(err)
	}
	return sub, nil
}

// DeleteSubcategory removes a subcategory.
func (s *taxonomyService) DeleteSubcategory(subcategoryID string) error {
	s.locks.Taxonomy.Lock()
	defer s.locks.Taxonomy.Unlock()

	result := s.db.Where("id = ?", subcategoryID).Delete(&models.Subcategory{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrSubcategoryNotFound
	}
	return nil
}

// ValidatePair checks that (category, subcategory) exists in the taxonomy.
func (s *taxonomyService) ValidatePair(category, subcategory string) error {
	s.locks.Taxonomy.RLock()
	defer s.locks.Taxonomy.RUnlock()

	return validatePair(s.db, category, subcategory)
}

// validatePair fails closed: any lookup problem is reported as an unknown
// pair or an internal error, never as success. Callers hold the taxonomy lock.
func validatePair(db *gorm.DB, category, subcategory string) error {
	var count int64
	err := db.Model(&models.Subcategory{}).
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Where("categories.name = ? AND subcategories.name = ?", category, subcategory).
		Count(&count).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.WithMessage(apperrors.ErrUnknownCategoryPair,
			fmt.Sprintf("category/subcategory: %q/%q is not in the taxonomy", category, subcategory))
	}
	return nil
}

func internalOrNil(err error) error {
	if err == nil {
		return nil
	}
	return internal(err)
}
