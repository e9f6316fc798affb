// Package controller provides the HTTP request handlers for the tbs-api
// catalog service: user authentication, specializations and course items.
package controller

import (
	"net/http"

	"tbs-api/logger"
	"tbs-api/web/entity"
	"tbs-api/web/middleware"
	"tbs-api/web/service"
	"tbs-api/web/token"

	"github.com/gin-gonic/gin"
)

// UserForm carries registration and login credentials.
type UserForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserController handles registration, login and the profile route.
type UserController struct {
	userService  service.UserService
	tokenManager *token.Manager
}

func NewUserController(g *gin.RouterGroup, tm *token.Manager) *UserController {
	a := &UserController{tokenManager: tm}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.GET("/user", middleware.TokenAuth(a.tokenManager), a.profile)
}

func (a *UserController) register(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.userService.Register(form.Username, form.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	logger.Infof("user %s registered", user.Username)
	c.JSON(http.StatusOK, entity.UserProfile{Id: user.Id, Username: user.Username})
}

func (a *UserController) login(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.userService.CheckUser(form.Username, form.Password)
	if err != nil {
		logger.Warningf("failed login attempt for %q", form.Username)
		serviceError(c, err)
		return
	}

	accessToken, err := a.tokenManager.Issue(user.Id)
	if err != nil {
		serviceError(c, err)
		return
	}

	logger.Infof("%s logged in successfully", user.Username)
	c.JSON(http.StatusOK, entity.LoginResponse{
		AccessToken: accessToken,
		UserId:      user.Id,
		Username:    user.Username,
	})
}

// profile returns the account of the verified token's user.
func (a *UserController) profile(c *gin.Context) {
	user, err := a.userService.GetUser(c.GetInt(middleware.UserIdKey))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.UserProfile{Id: user.Id, Username: user.Username})
}
