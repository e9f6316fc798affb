package service

import (
	"testing"

	"tbs-api/database"
	"tbs-api/database/model"

	"github.com/stretchr/testify/assert"
)

func TestCourseItemCRUD(t *testing.T) {
	setup()
	defer teardown()

	specService := SpecializationService{}
	itemService := CourseItemService{}

	spec, err := specService.Create("Data Science")
	assert.NoError(t, err)

	item, err := itemService.Create("Intro", "Course", spec.Id)
	assert.NoError(t, err)
	assert.Len(t, item.Id, 32)
	assert.Equal(t, spec.Id, item.SpecializationId)

	retrieved, err := itemService.Get(item.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Intro", retrieved.Name)
	if assert.NotNil(t, retrieved.Specialization) {
		assert.Equal(t, "Data Science", retrieved.Specialization.Name)
	}

	items, err := itemService.GetAll()
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	err = itemService.Delete(item.Id)
	assert.NoError(t, err)
	_, err = itemService.Get(item.Id)
	assert.ErrorIs(t, err, ErrCourseItemNotFound)
}

func TestCourseItemCreateMissingParent(t *testing.T) {
	setup()
	defer teardown()

	itemService := CourseItemService{}

	_, err := itemService.Create("Intro", "Course", "missing")
	assert.ErrorIs(t, err, ErrSpecializationNotFound)

	// the failed create left no record behind
	var count int64
	database.GetDB().Model(model.CourseItem{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCourseItemDuplicate(t *testing.T) {
	setup()
	defer teardown()

	specService := SpecializationService{}
	itemService := CourseItemService{}

	specA, err := specService.Create("Data Science")
	assert.NoError(t, err)
	specB, err := specService.Create("Web Development")
	assert.NoError(t, err)

	_, err = itemService.Create("Intro", "Course", specA.Id)
	assert.NoError(t, err)

	// duplicate within the same specialization fails
	_, err = itemService.Create("Intro", "Workshop", specA.Id)
	assert.ErrorIs(t, err, ErrCourseItemExists)

	// same name under a different specialization is fine
	_, err = itemService.Create("Intro", "Course", specB.Id)
	assert.NoError(t, err)
}

func TestCourseItemPartialUpdate(t *testing.T) {
	setup()
	defer teardown()

	specService := SpecializationService{}
	itemService := CourseItemService{}

	spec, err := specService.Create("Data Science")
	assert.NoError(t, err)
	item, err := itemService.Create("Intro", "Course", spec.Id)
	assert.NoError(t, err)

	// omitted fields keep their current values
	newType := "Workshop"
	updated, err := itemService.Update(item.Id, nil, &newType, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Intro", updated.Name)
	assert.Equal(t, "Workshop", updated.Type)
	assert.Equal(t, spec.Id, updated.SpecializationId)

	// moving to a nonexistent specialization is rejected
	missing := "missing"
	_, err = itemService.Update(item.Id, nil, nil, &missing)
	assert.ErrorIs(t, err, ErrSpecializationNotFound)

	// the rejected move was not committed
	retrieved, err := itemService.Get(item.Id)
	assert.NoError(t, err)
	assert.Equal(t, spec.Id, retrieved.SpecializationId)

	// moving to an existing specialization works
	other, err := specService.Create("Web Development")
	assert.NoError(t, err)
	updated, err = itemService.Update(item.Id, nil, nil, &other.Id)
	assert.NoError(t, err)
	assert.Equal(t, other.Id, updated.SpecializationId)
}

func TestCourseItemUpdateNotFound(t *testing.T) {
	setup()
	defer teardown()

	itemService := CourseItemService{}

	name := "Intro"
	_, err := itemService.Update("missing", &name, nil, nil)
	assert.ErrorIs(t, err, ErrCourseItemNotFound)

	err = itemService.Delete("missing")
	assert.ErrorIs(t, err, ErrCourseItemNotFound)
}
