package service

import (
	"testing"

	"tbs-api/database"
	"tbs-api/database/model"

	"github.com/stretchr/testify/assert"
)

func TestSpecializationCRUD(t *testing.T) {
	setup()
	defer teardown()

	service := SpecializationService{}

	spec, err := service.Create("Data Science")
	assert.NoError(t, err)
	assert.Len(t, spec.Id, 32)
	assert.Equal(t, "Data Science", spec.Name)
	assert.NotNil(t, spec.CourseItems)

	retrieved, err := service.Get(spec.Id)
	assert.NoError(t, err)
	assert.Equal(t, spec.Name, retrieved.Name)
	assert.Empty(t, retrieved.CourseItems)

	specs, err := service.GetAll()
	assert.NoError(t, err)
	assert.Len(t, specs, 1)

	updated, err := service.Update(spec.Id, "Machine Learning")
	assert.NoError(t, err)
	assert.Equal(t, "Machine Learning", updated.Name)
	assert.Equal(t, spec.Id, updated.Id)

	err = service.Delete(spec.Id)
	assert.NoError(t, err)
	_, err = service.Get(spec.Id)
	assert.ErrorIs(t, err, ErrSpecializationNotFound)
}

func TestSpecializationNotFound(t *testing.T) {
	setup()
	defer teardown()

	service := SpecializationService{}

	_, err := service.Get("missing")
	assert.ErrorIs(t, err, ErrSpecializationNotFound)

	_, err = service.Update("missing", "Any")
	assert.ErrorIs(t, err, ErrSpecializationNotFound)

	err = service.Delete("missing")
	assert.ErrorIs(t, err, ErrSpecializationNotFound)
}

func TestSpecializationDuplicateName(t *testing.T) {
	setup()
	defer teardown()

	service := SpecializationService{}

	_, err := service.Create("Data Science")
	assert.NoError(t, err)

	_, err = service.Create("Data Science")
	assert.ErrorIs(t, err, ErrSpecializationExists)

	var count int64
	database.GetDB().Model(model.Specialization{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSpecializationCascadeDelete(t *testing.T) {
	setup()
	defer teardown()

	specService := SpecializationService{}
	itemService := CourseItemService{}

	spec, err := specService.Create("Data Science")
	assert.NoError(t, err)

	for _, name := range []string{"Intro", "Statistics", "Capstone"} {
		_, err := itemService.Create(name, "Course", spec.Id)
		assert.NoError(t, err)
	}

	retrieved, err := specService.Get(spec.Id)
	assert.NoError(t, err)
	assert.Len(t, retrieved.CourseItems, 3)

	err = specService.Delete(spec.Id)
	assert.NoError(t, err)

	// no orphaned course items remain
	var count int64
	database.GetDB().Model(model.CourseItem{}).
		Where("specialization_id = ?", spec.Id).
		Count(&count)
	assert.EqualValues(t, 0, count)
}
