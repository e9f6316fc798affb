package service

import (
	"encoding/hex"
	"errors"

	"tbs-api/database"
	"tbs-api/database/model"

	"github.com/google/uuid"
)

var (
	ErrSpecializationExists   = errors.New("Specialization already exists.")
	ErrSpecializationNotFound = errors.New("Specialization not found.")
)

// newEntityID returns a 32-character hex id for catalog entities.
func newEntityID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

type SpecializationService struct{}

// Create inserts a new specialization. The name uniqueness check and the
// insert run in one transaction.
func (s *SpecializationService) Create(name string) (spec *model.Specialization, err error) {
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
		Where("name = ?", name).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		err = ErrSpecializationExists
		return nil, err
	}

	spec = &model.Specialization{
		Id:   newEntityID(),
		Name: name,
	}
	if err = tx.Create(spec).Error; err != nil {
		return nil, err
	}
	spec.CourseItems = []model.CourseItem{}
	return spec, nil
}

func (s *SpecializationService) Get(id string) (*model.Specialization, error) {
	db := database.GetDB()

	spec := &model.Specialization{}
	err := db.Preload("CourseItems").
		Where("id = ?", id).
		First(spec).
		Error
	if database.IsNotFound(err) {
		return nil, ErrSpecializationNotFound
	} else if err != nil {
		return nil, err
	}
	if spec.CourseItems == nil {
		spec.CourseItems = []model.CourseItem{}
	}
	return spec, nil
}

func (s *SpecializationService) GetAll() ([]model.Specialization, error) {
	db := database.GetDB()

	var specs []model.Specialization
	err := db.Preload("CourseItems").Find(&specs).Error
	if err != nil {
		return nil, err
	}
	for i := range specs {
		if specs[i].CourseItems == nil {
			specs[i].CourseItems = []model.CourseItem{}
		}
	}
	return specs, nil
}

func (s *SpecializationService) Update(id string, name string) (spec *model.Specialization, err error) {
	db := database.GetDB()
	tx := db.Begin()
	defer func() {
		if err == nil {
			tx.Commit()
		} else {
			tx.Rollback()
		}
	}()

	spec = &model.Specialization{}
	err = tx.Preload("CourseItems").
		Where("id = ?", id).
		First(spec).
		Error
	if database.IsNotFound(err) {
		err = ErrSpecializationNotFound
		return nil, err
	} else if err != nil {
		return nil, err
	}

	spec.Name = name
	if err = tx.Save(spec).Error; err != nil {
		return nil, err
	}
	if spec.CourseItems == nil {
		spec.CourseItems = []model.CourseItem{}
	}
	return spec, nil
}

// Delete removes a specialization and all course items it owns. The
// two-step cascade runs in one transaction so no orphans can remain.
func (s *SpecializationService) Delete(id string) (err error) {
	db := database.GetDB()
	tx := db.Begin()
	defer func() {
		if err == nil {
			tx.Commit()
		} else {
			tx.Rollback()
		}
	}()

	spec := &model.Specialization{}
	err = tx.Where("id = ?", id).First(spec).Error
	if database.IsNotFound(err) {
		err = ErrSpecializationNotFound
		return err
	} else if err != nil {
		return err
	}

	err = tx.Where("specialization_id = ?", id).Delete(&model.CourseItem{}).Error
	if err != nil {
		return err
	}
	return tx.Delete(spec).Error
}
