package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"fusion/pkg/engine"
	"fusion/pkg/inference"
	"fusion/pkg/schema"
	"fusion/pkg/utils"
)

// POST /api/chat
func (s *Server) handlePostChat(c echo.Context) error {
	var req schema.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Missing required fields"))
	}
	if anyBlank(req.CharacterName, req.CharacterSource, req.UserMessage) {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Missing required fields"))
	}
	if s.Engine == nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Gemini API key not configured"))
	}

	reply, err := s.Engine.Chat(c.Request().Context(), req)
	if err != nil {
		return s.completionError(c, err)
	}
	return c.JSON(http.StatusOK, reply)
}

// POST /api/roleplay
func (s *Server) handlePostRolePlay(c echo.Context) error {
	var req schema.RolePlayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Missing required fields"))
	}
	if anyBlank(req.AICharacterName, req.AICharacterSource, req.UserCharacterName, req.SceneDescription, req.UserMessage) {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Missing required fields"))
	}
	if s.Engine == nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Gemini API key not configured"))
	}

	reply, err := s.Engine.RolePlay(c.Request().Context(), req)
	if err != nil {
		return s.completionError(c, err)
	}
	return c.JSON(http.StatusOK, reply)
}

// POST /api/story
func (s *Server) handlePostStory(c echo.Context) error {
	var req schema.StoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Missing required fields"))
	}
	if len(req.AICharacters) == 0 || anyBlank(req.UserCharacterName, req.StoryScript, req.UserMessage) {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Missing required fields"))
	}
	if s.Engine == nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Gemini API key not configured"))
	}

	reply, err := s.Engine.Story(c.Request().Context(), req)
	if err != nil {
		return s.completionError(c, err)
	}
	return c.JSON(http.StatusOK, reply)
}

func anyBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

// completionError maps engine failures onto the response envelope.
func (s *Server) completionError(c echo.Context, err error) error {
	var upstream *inference.UpstreamError
	switch {
	case errors.As(err, &upstream):
		log.Error("Upstream completion failed", "status", upstream.StatusCode, "message", upstream.Message)
		body := utils.ErrJSON("Failed to generate response from Gemini API")
		if upstream.Details != nil {
			body["details"] = upstream.Details
		} else {
			body["details"] = upstream.Message
		}
		return c.JSON(http.StatusInternalServerError, body)
	case errors.Is(err, inference.ErrNoContent):
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("No response generated from Gemini API"))
	case errors.Is(err, engine.ErrNoResponses):
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Failed to generate any character responses"))
	default:
		log.Error("Completion failed", "err", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Failed to generate response from Gemini API"))
	}
}
