package commands

import (
	"context"

	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
)

// SelectRateCommandHandler stores the operator's rate choice.
type SelectRateCommandHandler struct {
	sessions ports.SessionRepository
}

func NewSelectRateCommandHandler(sessions ports.SessionRepository) SelectRateCommandHandler {
	return SelectRateCommandHandler{sessions: sessions}
}

func (h SelectRateCommandHandler) Handle(ctx context.Context, cmd SelectRateCommand) (shipment.Rate, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Rate{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return shipment.Rate{}, err
	}

	rate, err := session.SelectRate(cmd.RateID())
	if err != nil {
		return shipment.Rate{}, err
	}

	if err = h.sessions.Update(ctx, session); err != nil {
		return shipment.Rate{}, err
	}

	return rate, nil
}
