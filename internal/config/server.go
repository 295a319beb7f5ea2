package config

import (
	chatHandler "StimulusAssistant/internal/api/chat/handler"
	chatService "StimulusAssistant/internal/api/chat/service"
	"StimulusAssistant/internal/middleware"
	"StimulusAssistant/pkg/intent"
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	env        *Env
	middleware middleware.Middleware
	matcher    *intent.Matcher
	pacer      chatService.Pacer
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.env == nil {
		return nil, fmt.Errorf("environment is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.matcher == nil {
		return nil, fmt.Errorf("intent matcher is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithEnv(env *Env) ServerOption {
	return func(s *Server) error {
		s.env = env
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.env == nil {
			return fmt.Errorf("environment must be loaded before middleware")
		}
		s.middleware = middleware.New(s.log, middleware.Config{
			AllowOrigins: s.env.AllowOrigins,
		})
		return nil
	}
}

// WithMatcher builds the intent table from the configured site links and
// refuses to start when the table breaks its invariants.
func WithMatcher(opts ...intent.MatcherOption) ServerOption {
	return func(s *Server) error {
		if s.env == nil {
			return fmt.Errorf("environment must be loaded before the matcher")
		}

		links := s.env.Links()
		if err := intent.ValidateLinks(links); err != nil {
			return fmt.Errorf("invalid site links: %w", err)
		}

		table := intent.DefaultTable(links)
		if err := intent.Validate(table); err != nil {
			if s.log != nil {
				s.log.Errorf("Intent table rejected: %v", err)
			}
			return fmt.Errorf("invalid intent table: %w", err)
		}

		s.matcher = intent.NewMatcher(table, append([]intent.MatcherOption{intent.WithLinks(links)}, opts...)...)
		return nil
	}
}

// WithPacer overrides the typing delay chosen from CHAT_REPLY_DELAY.
func WithPacer(pacer chatService.Pacer) ServerOption {
	return func(s *Server) error {
		s.pacer = pacer
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewRecoverMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(s.middleware.NewCORSMiddleware())

	pacer := s.pacer
	if pacer == nil {
		pacer = chatService.NoDelay()
		if s.env.ReplyDelay {
			pacer = chatService.TypingDelay()
		}
	}

	// Chat
	chatServices := chatService.NewChatService(s.log, s.matcher, pacer)
	chatHandlers := chatHandler.New(s.log, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, chatHandlers)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	s.engine.Static("/", s.env.StaticDir)
}

func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	return s.engine.Listen(fmt.Sprintf(":%s", s.env.Port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.engine.ShutdownWithContext(ctx)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"ok": true,
		})
	})
	s.engine.Get("/version", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"version": s.env.Version,
		})
	})
}
