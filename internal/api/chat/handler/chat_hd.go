package chatHandler

import (
	"StimulusAssistant/internal/api/chat"
	contextPkg "StimulusAssistant/pkg/context"
	"StimulusAssistant/pkg/handlerUtil"
	"StimulusAssistant/pkg/log"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

const requestTimeout = 10 * time.Second

func (h *ChatHandler) GetResponse(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get response request")

	req, err := parseMessage(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.chatService.GetResponse(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_response")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ChatHandler) ServicesDetail(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing services detail request")

	req, err := parseMessage(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.chatService.ServicesDetail(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "services_detail")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ChatHandler) Suggest(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.chatService.Suggestions(ctx.UserContext()))
}

// parseMessage reads {"message": ...} from a JSON body. A missing body,
// another content type, a JSON value that is not an object, or a missing
// message all mean an empty message; only a broken JSON document is
// refused.
func parseMessage(ctx *fiber.Ctx) (chat.MessageRequest, error) {
	var req chat.MessageRequest
	body := ctx.Body()
	if len(body) == 0 || !ctx.Is("json") {
		return req, nil
	}

	if !jsoniter.Valid(body) {
		return req, chat.ErrMalformedBody
	}
	if jsoniter.Get(body).ValueType() != jsoniter.ObjectValue {
		return req, nil
	}

	if err := jsoniter.Unmarshal(body, &req); err != nil {
		return chat.MessageRequest{}, fmt.Errorf("%w: %v", chat.ErrMalformedBody, err)
	}

	return req, nil
}
