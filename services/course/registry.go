package courseService

import (
	courseModels "madrasa/models/course"

	"gorm.io/gorm"
)

// FindMaterialsByType loads the concrete records behind a batch of material
// ids of a single type. One query per type, never one per id. The switch is
// exhaustive over the closed set of material variants; any other
// discriminator fails with ErrInvalidMaterialType.
func FindMaterialsByType(db *gorm.DB, materialType courseModels.MaterialType, ids []uint) ([]courseModels.MaterialRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	switch materialType {
	case courseModels.MaterialTypeVideo:
		var rows []courseModels.Video
		if err := db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&rows).Error; err != nil {
			return nil, err
		}
		records := make([]courseModels.MaterialRecord, len(rows))
		for i := range rows {
			records[i] = &rows[i]
		}
		return records, nil

	case courseModels.MaterialTypeQuiz:
		var rows []courseModels.Quiz
		if err := db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&rows).Error; err != nil {
			return nil, err
		}
		records := make([]courseModels.MaterialRecord, len(rows))
		for i := range rows {
			records[i] = &rows[i]
		}
		return records, nil

	case courseModels.MaterialTypeQuizGroup:
		var rows []courseModels.QuizGroup
		err := db.Where("id IN ? AND is_deleted = ?", ids, false).
			Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
			Preload("Items.Quiz").
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		records := make([]courseModels.MaterialRecord, len(rows))
		for i := range rows {
			records[i] = &rows[i]
		}
		return records, nil

	case courseModels.MaterialTypeArticle:
		var rows []courseModels.Article
		if err := db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&rows).Error; err != nil {
			return nil, err
		}
		records := make([]courseModels.MaterialRecord, len(rows))
		for i := range rows {
			records[i] = &rows[i]
		}
		return records, nil

	case courseModels.MaterialTypeResource:
		var rows []courseModels.Resource
		if err := db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&rows).Error; err != nil {
			return nil, err
		}
		records := make([]courseModels.MaterialRecord, len(rows))
		for i := range rows {
			records[i] = &rows[i]
		}
		return records, nil
	}

	return nil, ErrInvalidMaterialType
}

// FindMaterial resolves one (id, type) pair through the registry
func FindMaterial(db *gorm.DB, materialType courseModels.MaterialType, id uint) (courseModels.MaterialRecord, error) {
	records, err := FindMaterialsByType(db, materialType, []uint{id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrMaterialNotFound
	}
	return records[0], nil
}
