package chatHandler

import (
	chatService "StimulusAssistant/internal/api/chat/service"
	"StimulusAssistant/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		middleware:  middleware,
		chatService: cs,
	}
}

// Start mounts the widget endpoints. The paths are fixed by the
// frontend, so they live at the router root.
func (h *ChatHandler) Start(srv fiber.Router) {
	srv.Post("/get-response", h.GetResponse)
	srv.Post("/services-detail", h.ServicesDetail)
	srv.Get("/suggest", h.Suggest)
}
