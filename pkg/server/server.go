package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fusion/pkg/engine"
	"fusion/pkg/store"
	"fusion/pkg/utils"
)

type Server struct {
	Echo     *echo.Echo
	Engine   *engine.Engine // nil when no provider key is configured
	Accounts *store.Accounts
	Ctx      context.Context
}

func NewServer(ctx context.Context, eng *engine.Engine, accounts *store.Accounts) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(crossOrigin)
	e.HTTPErrorHandler = errorHandler

	s := &Server{
		Echo:     e,
		Engine:   eng,
		Accounts: accounts,
		Ctx:      ctx,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.POST("/chat", s.handlePostChat)         // single-character conversation
	api.POST("/roleplay", s.handlePostRolePlay) // scene-driven role-play
	api.POST("/story", s.handlePostStory)       // multi-character story mode

	auth := api.Group("/auth")
	auth.POST("/signup", s.handlePostSignup)
	auth.POST("/login", s.handlePostLogin)

	profile := api.Group("/profile")
	profile.POST("/update", s.handlePostProfileUpdate)
	profile.POST("/achievements", s.handlePostAchievement)
}

// crossOrigin answers preflight requests directly with an empty 200 body
// and stamps the CORS headers on every response.
func crossOrigin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowOrigin, "*")
		h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
		h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}

// errorHandler renders every error as {"error": message} so clients get a
// uniform envelope, including echo's own routing errors.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		if code == http.StatusMethodNotAllowed {
			msg = "Method not allowed"
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if err := c.JSON(code, utils.ErrJSON(msg)); err != nil {
		log.Error("writing error response", "err", err)
	}
}

func (s *Server) Start(addr string) error {
	log.Info("Server listening", "addr", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("Shutting down server...")
	return s.Echo.Shutdown(ctx)
}
