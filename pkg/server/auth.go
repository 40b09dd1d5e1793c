package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"fusion/pkg/store"
	"fusion/pkg/utils"
)

type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileUpdateReq struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type achievementReq struct {
	UserID      string `json:"userId"`
	Achievement string `json:"achievement"`
}

// POST /api/auth/signup
func (s *Server) handlePostSignup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(store.ErrFieldsRequired.Error()))
	}

	user, err := s.Accounts.Signup(c.Request().Context(), req.Email, req.Password, req.Username)
	if err != nil {
		return s.accountError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// POST /api/auth/login
func (s *Server) handlePostLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(store.ErrBadCredentials.Error()))
	}

	user, err := s.Accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.accountError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// POST /api/profile/update
func (s *Server) handlePostProfileUpdate(c echo.Context) error {
	var req profileUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(store.ErrFieldsRequired.Error()))
	}

	user, err := s.Accounts.UpdateProfile(c.Request().Context(), req.UserID, req.Username, req.Avatar)
	if err != nil {
		return s.accountError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// POST /api/profile/achievements
func (s *Server) handlePostAchievement(c echo.Context) error {
	var req achievementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(store.ErrFieldsRequired.Error()))
	}

	user, err := s.Accounts.AddAchievement(c.Request().Context(), req.UserID, req.Achievement)
	if err != nil {
		return s.accountError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// accountError keeps validation failures at 400 and everything else at 500.
func (s *Server) accountError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrFieldsRequired),
		errors.Is(err, store.ErrPasswordTooShort),
		errors.Is(err, store.ErrUsernameTooShort),
		errors.Is(err, store.ErrInvalidEmail),
		errors.Is(err, store.ErrEmailTaken),
		errors.Is(err, store.ErrUsernameTaken),
		errors.Is(err, store.ErrBadCredentials),
		errors.Is(err, store.ErrUserNotFound):
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
	default:
		log.Error("Account operation failed", "err", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("Internal server error"))
	}
}
