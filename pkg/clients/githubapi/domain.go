package githubapi

import (
	"errors"
	"time"

	"github.com/rvl/hydra-build-products-action/pkg/api"
)

const (
	StateSuccess = "success"
	StatePending = "pending"
	StateFailure = "failure"
	StateError   = "error"
)

var (
	// ErrUnexpectedStatusCode is returned for any non-2xx response from the github api
	ErrUnexpectedStatusCode = errors.New("unexpected status code from github api")
)

// Status represents a commit status as returned by the github statuses api
type Status struct {
	Context     string    `json:"context"`
	State       string    `json:"state"`
	TargetURL   string    `json:"target_url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Status) IsSuccess() bool {
	return s.State == StateSuccess
}

func (s *Status) IsPending() bool {
	return s.State == StatePending
}

// StatusFromPrevious converts the status carried by a status event
func StatusFromPrevious(previous *api.PreviousStatus) *Status {
	if previous == nil {
		return nil
	}

	return &Status{
		Context:   previous.Context,
		State:     previous.State,
		TargetURL: previous.TargetURL,
	}
}
