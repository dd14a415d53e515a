// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/accesspaper/internal/logger"
	"github.com/pdiddy/accesspaper/internal/metrics"
	"github.com/pdiddy/accesspaper/internal/ui"
)

const sessionCookie = "accesspaper_session"

// session resolves the caller's session and refreshes its cookie when a new
// one was created.
func (s *Server) session(c *gin.Context) *session {
	id, _ := c.Cookie(sessionCookie)
	sess, created := s.sessions.get(id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sess.id, 0, "/", "", c.Request.TLS != nil, true)
	}
	return sess
}

func (s *Server) handlePage(c *gin.Context) {
	sess := s.session(c)
	page := ui.NewPage(sess.controller.View(), sess.alerts.Drain(), s.showLogs)

	var buf bytes.Buffer
	if err := ui.RenderHTML(&buf, page); err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "rendering page failed")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleSearch(c *gin.Context) {
	sess := s.session(c)
	err := sess.controller.SubmitSearch(c.Request.Context(), c.PostForm("doi"))

	switch {
	case err == nil:
		s.metrics.Searches.WithLabelValues(metrics.OutcomeSuccess).Inc()
	case errors.Is(err, ui.ErrEmptyQuery):
		s.metrics.Searches.WithLabelValues(metrics.OutcomeInvalid).Inc()
	case errors.Is(err, ui.ErrSearchInProgress):
		s.log.Debug("search ignored while loading", logger.String("session", sess.id))
	default:
		s.metrics.Searches.WithLabelValues(metrics.OutcomeFailure).Inc()
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleBack(c *gin.Context) {
	s.session(c).controller.GoBack()
	c.Redirect(http.StatusSeeOther, "/")
}
