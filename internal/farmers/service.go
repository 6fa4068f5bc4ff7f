// Package farmers exposes typed operations over the farmer resource area.
//
// Failure policy per operation: lookups and listings absorb every failure
// into an absent/empty result, UpdatePhone always returns a result value.
// The asymmetry is deliberate: reads favour availability, writes must stay
// visible to the caller.
package farmers

import (
	"context"
	"encoding/json"
	"fmt"

	errx "github.com/ReganLema/M-CONNECT-sub001/internal/core/error"
	logx "github.com/ReganLema/M-CONNECT-sub001/pkg/logger"
	"github.com/rs/zerolog"
)

const updateFallbackMessage = "failed to update phone number"

// Backend is the slice of the request client this service uses.
type Backend interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Put(ctx context.Context, path string, body any) ([]byte, error)
}

type Service struct {
	backend Backend
	log     zerolog.Logger
}

func NewService(backend Backend) *Service {
	return &Service{
		backend: backend,
		log:     logx.With("farmers"),
	}
}

// FarmerByID looks up one farmer. Any failure, including a success:false
// envelope, resolves to absent; callers cannot distinguish "not found" from
// "unreachable" and are not meant to.
func (s *Service) FarmerByID(ctx context.Context, id int64) (*Farmer, bool) {
	body, err := s.backend.Get(ctx, fmt.Sprintf("/farmers/%d", id))
	if err != nil {
		s.log.Warn().Err(err).Int64("farmer_id", id).Msg("farmer lookup failed")
		return nil, false
	}

	var envelope struct {
		Success bool         `json:"success"`
		Data    farmerRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		s.log.Warn().Err(err).Int64("farmer_id", id).Msg("farmer payload malformed")
		return nil, false
	}
	if !envelope.Success {
		return nil, false
	}

	farmer := envelope.Data.toDomain()
	return &farmer, true
}

// List returns all farmers, empty on any failure.
func (s *Service) List(ctx context.Context) []Farmer {
	body, err := s.backend.Get(ctx, "/farmers")
	if err != nil {
		s.log.Warn().Err(err).Msg("farmer list failed")
		return []Farmer{}
	}

	var envelope struct {
		Success bool           `json:"success"`
		Data    []farmerRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || !envelope.Success {
		return []Farmer{}
	}

	out := make([]Farmer, 0, len(envelope.Data))
	for _, rec := range envelope.Data {
		out = append(out, rec.toDomain())
	}
	return out
}

// Products returns a farmer's catalog in backend order. A listing failure
// degrades to "no products shown", never to an error state.
func (s *Service) Products(ctx context.Context, farmerID int64) []FarmerProduct {
	body, err := s.backend.Get(ctx, fmt.Sprintf("/farmers/%d/products", farmerID))
	if err != nil {
		s.log.Warn().Err(err).Int64("farmer_id", farmerID).Msg("product listing failed")
		return []FarmerProduct{}
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    []productRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || !envelope.Success {
		return []FarmerProduct{}
	}

	out := make([]FarmerProduct, 0, len(envelope.Data))
	for _, rec := range envelope.Data {
		out = append(out, rec.toDomain())
	}
	return out
}

// UpdatePhone changes a farmer's phone number. It always returns a result
// value; on failure Success is false and Message carries the backend reason
// when one was provided.
func (s *Service) UpdatePhone(ctx context.Context, farmerID int64, phone string) UpdateResult {
	payload := map[string]string{"phone": phone}

	body, err := s.backend.Put(ctx, fmt.Sprintf("/farmers/%d/phone", farmerID), payload)
	if err != nil {
		s.log.Warn().Err(err).Int64("farmer_id", farmerID).Msg("phone update failed")
		return UpdateResult{Success: false, Message: messageOrFallback(err)}
	}

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return UpdateResult{Success: false, Message: updateFallbackMessage}
	}
	if !envelope.Success {
		msg := envelope.Message
		if msg == "" {
			msg = updateFallbackMessage
		}
		return UpdateResult{Success: false, Message: msg}
	}

	msg := envelope.Message
	if msg == "" {
		msg = "phone number updated"
	}
	return UpdateResult{Success: true, Message: msg}
}

func messageOrFallback(err error) string {
	return errx.MessageOf(err, updateFallbackMessage)
}
