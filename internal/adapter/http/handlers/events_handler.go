package handlers

import (
	"fmt"
	"io"
	"time"

	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const defaultKeepAlive = 15 * time.Second

// EventsHandler streams the authenticated user's notifications as
// server-sent events.
type EventsHandler struct {
	notifier  interfaces.INotifier
	keepAlive time.Duration
	logger    logrus.FieldLogger
}

func NewEventsHandler(notifier interfaces.INotifier, logger logrus.FieldLogger) *EventsHandler {
	return &EventsHandler{
		notifier:  notifier,
		keepAlive: defaultKeepAlive,
		logger:    logger.WithField("module", "sse"),
	}
}

func (h *EventsHandler) Stream(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	events, unsubscribe, err := h.notifier.Subscribe(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer unsubscribe()

	log := h.logger.WithField("user_id", user.ID)
	log.Debug("subscriber connected")
	defer log.Debug("subscriber disconnected")

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Type), ev)
			return true
		case <-ticker.C:
			_, err := fmt.Fprint(w, ": keep-alive\n\n")
			return err == nil
		}
	})
}
