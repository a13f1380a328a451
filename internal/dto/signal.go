package dto

import "barbellfx-relay/internal/model"

// SignalRequest is the body of POST /signal. Fields are pointers so that a
// missing value can be told apart from an explicit zero.
type SignalRequest struct {
	Pair       *string  `json:"pair" validate:"required,min=1"`
	Action     *string  `json:"action" validate:"required_without=Direction"`
	Direction  *string  `json:"direction,omitempty" validate:"omitempty,min=1"`
	EntryMin   *float64 `json:"entry_min" validate:"required,gte=0"`
	EntryMax   *float64 `json:"entry_max" validate:"required,gte=0"`
	StopLoss   *float64 `json:"stop_loss" validate:"required,gte=0"`
	TP1        *float64 `json:"tp1" validate:"required,gte=0"`
	TP2        *float64 `json:"tp2" validate:"required,gte=0"`
	TPFull     *float64 `json:"tp_full" validate:"required,gte=0"`
	Confidence *float64 `json:"confidence" validate:"required"`
	Setup      *string  `json:"setup" validate:"required"`
	Timestamp  *string  `json:"timestamp" validate:"required"`
}

// ToModel builds the Signal record. It must only be called after the
// request passed validation.
func (r *SignalRequest) ToModel() model.Signal {
	action := r.Direction
	if r.Action != nil {
		action = r.Action
	}
	return model.Signal{
		Pair:       deref(r.Pair),
		Action:     deref(action),
		EntryMin:   deref(r.EntryMin),
		EntryMax:   deref(r.EntryMax),
		StopLoss:   deref(r.StopLoss),
		TP1:        deref(r.TP1),
		TP2:        deref(r.TP2),
		TPFull:     deref(r.TPFull),
		Confidence: deref(r.Confidence),
		Setup:      deref(r.Setup),
		Timestamp:  deref(r.Timestamp),
	}
}

type SignalReceivedResponse struct {
	Status string       `json:"status"`
	Signal model.Signal `json:"signal"`
}

type StatusResponse struct {
	Status        string            `json:"status"`
	Version       string            `json:"version"`
	Endpoints     map[string]string `json:"endpoints"`
	CurrentSignal *model.Signal     `json:"currentSignal"`
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
