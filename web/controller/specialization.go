package controller

import (
	"net/http"

	"tbs-api/web/middleware"
	"tbs-api/web/service"
	"tbs-api/web/token"

	"github.com/gin-gonic/gin"
)

// SpecializationForm carries the writable specialization fields.
type SpecializationForm struct {
	Name string `json:"name" binding:"required"`
}

// SpecializationController handles the /specialization routes. Reads are
// public; mutations require a bearer token.
type SpecializationController struct {
	specService  service.SpecializationService
	tokenManager *token.Manager
}

func NewSpecializationController(g *gin.RouterGroup, tm *token.Manager) *SpecializationController {
	a := &SpecializationController{tokenManager: tm}
	a.initRouter(g)
	return a
}

func (a *SpecializationController) initRouter(g *gin.RouterGroup) {
	g.GET("/specialization", a.list)
	g.GET("/specialization/:id", a.get)

	auth := middleware.TokenAuth(a.tokenManager)
	g.POST("/specialization", auth, a.create)
	g.PUT("/specialization/:id", auth, a.update)
	g.DELETE("/specialization/:id", auth, a.delete)
}

func (a *SpecializationController) list(c *gin.Context) {
	specs, err := a.specService.GetAll()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, specs)
}

func (a *SpecializationController) get(c *gin.Context) {
	spec, err := a.specService.Get(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

func (a *SpecializationController) create(c *gin.Context) {
	var form SpecializationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	spec, err := a.specService.Create(form.Name)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, spec)
}

func (a *SpecializationController) update(c *gin.Context) {
	var form SpecializationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	spec, err := a.specService.Update(c.Param("id"), form.Name)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

func (a *SpecializationController) delete(c *gin.Context) {
	if err := a.specService.Delete(c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	jsonMsg(c, "Specialization deleted.")
}
