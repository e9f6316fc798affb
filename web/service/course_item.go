package service

import (
	"errors"

	"tbs-api/database"
	"tbs-api/database/model"
)

var (
	ErrCourseItemExists   = errors.New("Course_Item already exists.")
	ErrCourseItemNotFound = errors.New("Course_item not found.")
)

type CourseItemService struct{}

// Create inserts a new course item. The parent existence check, the
// per-specialization uniqueness check and the insert run in one
// transaction so the foreign key cannot go stale between check and write.
func (s *CourseItemService) Create(name string, itemType string, specializationId string) (item *model.CourseItem, err error) {
	db := database.GetDB()
	tx := db.Begin()
	defer func() {
		if err == nil {
			tx.Commit()
		} else {
			tx.Rollback()
		}
	}()

	var count int64
	err = tx.Model(model.Specialization{}).
		Where("id = ?", specializationId).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		err = ErrSpecializationNotFound
		return nil, err
	}

	err = tx.Model(model.CourseItem{}).
		Where("name = ? AND specialization_id = ?", name, specializationId).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		err = ErrCourseItemExists
		return nil, err
	}

	item = &model.CourseItem{
		Id:               newEntityID(),
		Name:             name,
		Type:             itemType,
		SpecializationId: specializationId,
	}
	if err = tx.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CourseItemService) Get(id string) (*model.CourseItem, error) {
	db := database.GetDB()

	item := &model.CourseItem{}
	err := db.Preload("Specialization").
		Where("id = ?", id).
		First(item).
		Error
	if database.IsNotFound(err) {
		return nil, ErrCourseItemNotFound
	} else if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CourseItemService) GetAll() ([]model.CourseItem, error) {
	db := database.GetDB()

	var items []model.CourseItem
	err := db.Preload("Specialization").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies a partial update: nil fields keep their current values.
// A new specialization_id is checked for existence before the write.
func (s *CourseItemService) Update(id string, name *string, itemType *string, specializationId *string) (item *model.CourseItem, err error) {
	db := database.GetDB()
	tx := db.Begin()
	defer func() {
		if err == nil {
			tx.Commit()
		} else {
			tx.Rollback()
		}
	}()

	item = &model.CourseItem{}
	err = tx.Where("id = ?", id).First(item).Error
	if database.IsNotFound(err) {
		err = ErrCourseItemNotFound
		return nil, err
	} else if err != nil {
		return nil, err
	}

	if name != nil {
		item.Name = *name
	}
	if itemType != nil {
		item.Type = *itemType
	}
	if specializationId != nil && *specializationId != item.SpecializationId {
		var count int64
		err = tx.Model(model.Specialization{}).
			Where("id = ?", *specializationId).
			Count(&count).
			Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			err = ErrSpecializationNotFound
			return nil, err
		}
		item.SpecializationId = *specializationId
	}

	if err = tx.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CourseItemService) Delete(id string) (err error) {
	db := database.GetDB()
	tx := db.Begin()
	defer func() {
		if err == nil {
			tx.Commit()
		} else {
			tx.Rollback()
		}
	}()

	item := &model.CourseItem{}
	err = tx.Where("id = ?", id).First(item).Error
	if database.IsNotFound(err) {
		err = ErrCourseItemNotFound
		return err
	} else if err != nil {
		return err
	}
	return tx.Delete(item).Error
}
