package item

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"itemdesk/internal/app/server/api/http/middleware/auth"
	"itemdesk/internal/domain/item"
	"itemdesk/internal/domain/validation"
)

type Handler struct {
	service    item.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service item.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "item_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.reorderOp(), h.reorder)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.togglePinOp(), h.togglePin)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	res, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, h.fail(err)
	}

	return &listOutput{
		Body: listResponse{Status: "Ok", Records: res.Records, Total: res.Total},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	it, err := h.service.Create(ctx, userID, input.Body)
	if err != nil {
		return nil, h.fail(err)
	}

	return recordOutput(it), nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	it, err := h.service.Update(ctx, userID, input.ID, input.Body)
	if err != nil {
		return nil, h.fail(err)
	}

	return recordOutput(it), nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, h.fail(err)
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) togglePin(ctx context.Context, input *idInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	it, err := h.service.TogglePin(ctx, userID, input.ID)
	if err != nil {
		return nil, h.fail(err)
	}

	return recordOutput(it), nil
}

func (h *Handler) reorder(ctx context.Context, input *reorderInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	if err := h.service.Reorder(ctx, userID, input.Body.Items); err != nil {
		return nil, h.fail(err)
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func recordOutput(it item.Item) *output {
	return &output{Body: response{Status: "Ok", ID: it.ID, Record: it}}
}

// fail переводит ошибку сервиса в HTTP ответ.
func (h *Handler) fail(err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, item.ErrNotFound):
		return huma.Error404NotFound("Item not found.")
	}

	h.log.Error("item request failed", "error", err)
	return huma.Error500InternalServerError("Server error.")
}
