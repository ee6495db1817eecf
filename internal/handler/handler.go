package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/festivepros/inquiry/internal/config"
	"github.com/festivepros/inquiry/internal/handoff"
	"github.com/festivepros/inquiry/internal/logger"
	"github.com/festivepros/inquiry/internal/mail"
)

// Handler holds all HTTP handlers. It is stateless across requests: every
// invocation works only with its own request data.
type Handler struct {
	sender mail.Sender
	store  handoff.Store
	log    *logger.Logger
	cfg    *config.Config
}

// New creates a new Handler instance
func New(sender mail.Sender, store handoff.Store, log *logger.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sender: sender,
		store:  store,
		log:    log,
		cfg:    cfg,
	}
}

// healthChecker is implemented by stores with a live backend connection.
type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// readJSON decodes the request body into v. Unknown fields are tolerated:
// the relay is deliberately permissive about payload shape.
func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
