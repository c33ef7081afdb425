package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/microcollab/microcollab-api/demo"
	"github.com/microcollab/microcollab-api/logmodule"
	"github.com/microcollab/microcollab-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.MicroCollabCore

	// Demo surface simulator
	simulator *demo.Simulator

	// resetData wipes and reseeds the mock storage; wired in only when
	// mock mode is enabled
	resetData func()
}

// NewServer new instance of server
func NewServer(mcStore store.MicroCollabCore, simulator *demo.Simulator, resetData func()) *Server {
	return &Server{
		store:     mcStore,
		simulator: simulator,
		resetData: resetData,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.recognizeUserMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdate)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.GET("", s.listRequests)
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PATCH("/:requestID", s.updateRequest)
		requestRoute.DELETE("/:requestID", s.deleteRequest)
		requestRoute.GET("/:requestID/offers", s.listOffers)
	}

	offerRoute := apiRoute.Group("/offers")
	{
		offerRoute.POST("", s.createOffer)
		offerRoute.PATCH("/:offerID/accept", s.acceptOffer)
		offerRoute.PATCH("/:offerID/decline", s.declineOffer)
	}

	sessionRoute := apiRoute.Group("/sessions")
	{
		sessionRoute.GET("", s.listSessions)
		sessionRoute.GET("/:sessionID", s.getSession)
		sessionRoute.PATCH("/:sessionID/start", s.startSession)
		sessionRoute.PATCH("/:sessionID/end", s.endSession)
		sessionRoute.PATCH("/:sessionID/cancel", s.cancelSession)
		sessionRoute.GET("/:sessionID/messages", s.listMessages)
		sessionRoute.POST("/:sessionID/messages", s.sendMessage)
	}

	apiRoute.GET("/helpers", s.listHelpers)

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.GET("/unread-count", s.unreadCount)
		notificationRoute.PATCH("/:notificationID/read", s.markNotificationRead)
		notificationRoute.POST("/read-all", s.markAllNotificationsRead)
	}

	demoRoute := r.Group("/demo")
	demoRoute.Use(logmodule.Ginrus("Demo"))
	demoRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		demoRoute.GET("/feed", s.demoFeed)
		demoRoute.GET("/summary", s.demoSummary)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/reset-mock-data", s.resetMockData)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping storage
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"mock_enabled":   viper.GetBool("mock.enabled"),
			"system_version": "MicroCollab 0.1",
		},
	})
}

func (s *Server) resetMockData(c *gin.Context) {
	if !viper.GetBool("mock.enabled") || s.resetData == nil {
		abortWithEncoding(c, http.StatusNotFound, errorInvalidParameters)
		return
	}

	s.resetData()
	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
