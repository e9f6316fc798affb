package controller

import (
	"net/http"

	"tbs-api/web/service"

	"github.com/gin-gonic/gin"
)

// CourseItemForm carries the fields required to create a course item.
type CourseItemForm struct {
	Name             string `json:"name" binding:"required"`
	Type             string `json:"type" binding:"required"`
	SpecializationId string `json:"specialization_id" binding:"required"`
}

// CourseItemUpdateForm carries a partial update; omitted fields keep their
// current values.
type CourseItemUpdateForm struct {
	Name             *string `json:"name"`
	Type             *string `json:"type"`
	SpecializationId *string `json:"specialization_id"`
}

// CourseItemController handles the /course_item routes. All of them are
// public; only specialization mutations are token-guarded.
type CourseItemController struct {
	itemService service.CourseItemService
}

func NewCourseItemController(g *gin.RouterGroup) *CourseItemController {
	a := &CourseItemController{}
	a.initRouter(g)
	return a
}

func (a *CourseItemController) initRouter(g *gin.RouterGroup) {
	g.GET("/course_item", a.list)
	g.POST("/course_item", a.create)
	g.GET("/course_item/:id", a.get)
	g.PUT("/course_item/:id", a.update)
	g.DELETE("/course_item/:id", a.delete)
}

func (a *CourseItemController) list(c *gin.Context) {
	items, err := a.itemService.GetAll()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *CourseItemController) get(c *gin.Context) {
	item, err := a.itemService.Get(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (a *CourseItemController) create(c *gin.Context) {
	var form CourseItemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.itemService.Create(form.Name, form.Type, form.SpecializationId)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (a *CourseItemController) update(c *gin.Context) {
	var form CourseItemUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.itemService.Update(c.Param("id"), form.Name, form.Type, form.SpecializationId)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (a *CourseItemController) delete(c *gin.Context) {
	if err := a.itemService.Delete(c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	jsonMsg(c, "Course_item deleted.")
}
