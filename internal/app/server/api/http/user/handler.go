package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"itemdesk/internal/app/server/api/http/middleware/auth"
	"itemdesk/internal/domain/user"
	"itemdesk/internal/domain/validation"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "user_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.toggleVerifiedOp(), h.toggleVerified)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	res, err := h.service.List(ctx, actorID)
	if err != nil {
		return nil, h.fail(err)
	}

	return &listOutput{
		Body: listResponse{Status: "Ok", Records: res.Records, Total: res.Total},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	u, err := h.service.Create(ctx, actorID, input.Body)
	if err != nil {
		return nil, h.fail(err)
	}

	return recordOutput(u), nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	u, err := h.service.Update(ctx, actorID, input.ID, input.Body)
	if err != nil {
		return nil, h.fail(err)
	}

	return recordOutput(u), nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*statusOutput, error) {
	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	if err := h.service.Delete(ctx, actorID, input.ID); err != nil {
		return nil, h.fail(err)
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) toggleVerified(ctx context.Context, input *idInput) (*output, error) {
	actorID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	u, err := h.service.ToggleVerified(ctx, actorID, input.ID)
	if err != nil {
		return nil, h.fail(err)
	}

	return recordOutput(u), nil
}

func recordOutput(u user.User) *output {
	return &output{Body: response{Status: "Ok", ID: u.ID, Record: u}}
}

func (h *Handler) fail(err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, user.ErrSelfDelete):
		return huma.Error403Forbidden("You cannot delete your own account.")
	case errors.Is(err, user.ErrForbidden):
		return huma.Error403Forbidden("This action is unauthorized.")
	case errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("User not found.")
	}

	h.log.Error("user request failed", "error", err)
	return huma.Error500InternalServerError("Server error.")
}
