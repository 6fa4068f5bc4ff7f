// Package orders exposes typed operations over the order resource area.
//
// Listing absorbs failures into an empty result; Place and Cancel propagate
// them. A mutation with side effects must never fail silently, so those two
// always surface an error carrying the best available human-readable
// message, preferring the backend-supplied one.
package orders

import (
	"context"
	"encoding/json"
	"fmt"

	errx "github.com/ReganLema/M-CONNECT-sub001/internal/core/error"
	logx "github.com/ReganLema/M-CONNECT-sub001/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	placeFallbackMessage  = "failed to place order"
	cancelFallbackMessage = "failed to cancel order"
)

// Backend is the slice of the request client this service uses.
type Backend interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
}

type Service struct {
	backend Backend
	log     zerolog.Logger
}

func NewService(backend Backend) *Service {
	return &Service{
		backend: backend,
		log:     logx.With("orders"),
	}
}

// List returns the caller's orders in backend order, empty on any failure.
// Wire records are normalized into the stable Order shape here, not in the
// request client.
func (s *Service) List(ctx context.Context) []Order {
	body, err := s.backend.Get(ctx, "/orders")
	if err != nil {
		s.log.Warn().Err(err).Msg("order listing failed")
		return []Order{}
	}

	var envelope struct {
		Success bool          `json:"success"`
		Orders  []orderRecord `json:"orders"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || !envelope.Success {
		return []Order{}
	}

	out := make([]Order, 0, len(envelope.Orders))
	for _, rec := range envelope.Orders {
		out = append(out, rec.toDomain())
	}
	return out
}

// Place submits the caller's pending order. It propagates on failure: the
// caller must know the mutation did not take effect.
func (s *Service) Place(ctx context.Context) (*Receipt, error) {
	body, err := s.backend.Post(ctx, "/orders/place", nil)
	if err != nil {
		return nil, errx.New(err, errx.KindOf(err), errx.MessageOf(err, placeFallbackMessage))
	}

	var envelope struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Data    orderRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errx.New(err, errx.KindUnknown, placeFallbackMessage)
	}
	if !envelope.Success {
		msg := envelope.Message
		if msg == "" {
			msg = placeFallbackMessage
		}
		return nil, errx.New(nil, errx.KindHTTP, msg)
	}

	msg := envelope.Message
	if msg == "" {
		msg = "order placed"
	}
	return &Receipt{Message: msg, Order: envelope.Data.toDomain()}, nil
}

// Cancel cancels one order and returns the backend confirmation message.
// Mirrors Place's failure policy: mutations fail loud.
func (s *Service) Cancel(ctx context.Context, orderID int64) (string, error) {
	body, err := s.backend.Post(ctx, fmt.Sprintf("/orders/%d/cancel", orderID), nil)
	if err != nil {
		return "", errx.New(err, errx.KindOf(err), errx.MessageOf(err, cancelFallbackMessage))
	}

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", errx.New(err, errx.KindUnknown, cancelFallbackMessage)
	}
	if !envelope.Success {
		msg := envelope.Message
		if msg == "" {
			msg = cancelFallbackMessage
		}
		return "", errx.New(nil, errx.KindHTTP, msg)
	}

	msg := envelope.Message
	if msg == "" {
		msg = "order cancelled"
	}
	return msg, nil
}
