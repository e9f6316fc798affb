// Package web provides the HTTP server for the tbs-api catalog service,
// including routing, middleware and background maintenance scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"tbs-api/config"
	"tbs-api/logger"
	"tbs-api/util/common"
	"tbs-api/util/random"
	"tbs-api/web/controller"
	"tbs-api/web/entity"
	"tbs-api/web/job"
	"tbs-api/web/middleware"
	"tbs-api/web/token"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// maxRequestBodySize caps incoming request bodies (1 MB).
const maxRequestBodySize = 1 << 20

// Server is the web server for the catalog API with its controllers and
// scheduled maintenance jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	user           *controller.UserController
	specialization *controller.SpecializationController
	courseItem     *controller.CourseItemController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	secret := config.GetJWTSecret()
	if secret == "" {
		if !config.IsDebug() {
			return nil, common.NewError("TBS_JWT_SECRET is not set")
		}
		secret = random.Seq(32)
		logger.Warning("TBS_JWT_SECRET not set, using a random per-process secret")
	}
	tm := token.NewManager(secret, time.Duration(config.GetTokenTTLMinutes())*time.Minute)

	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.BodySizeLimit(maxRequestBodySize))

	g := engine.Group("/")
	s.user = controller.NewUserController(g, tm)
	s.specialization = controller.NewSpecializationController(g, tm)
	s.courseItem = controller.NewCourseItemController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, entity.ApiError{
			Code:    http.StatusNotFound,
			Status:  http.StatusText(http.StatusNotFound),
			Message: "Not found.",
		})
	})

	return engine, nil
}

// startTask schedules background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckpointJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return common.NewErrorf("listen on %s failed: %v", listenAddr, err)
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
