package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"appointment-data-proxy/internal/delivery/http/middleware"
	"appointment-data-proxy/internal/domain/repository"
	"appointment-data-proxy/internal/usecase"
	"appointment-data-proxy/pkg/response"
	"appointment-data-proxy/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// KeyVar is the route variable holding the entity key.
const KeyVar = "key"

var errInvalidKey = errors.New("invalid key")

// EntityHandler serves the CRUD and streaming endpoints of one entity.
type EntityHandler[Req any, Resp any, K repository.Key, Filter any] struct {
	usecase   usecase.EntityUsecase[Req, Resp, K, Filter]
	validator *validator.CustomValidator
	log       *logrus.Logger
	name      string
	parseKey  func(string) (K, error)
}

func newEntityHandler[Req any, Resp any, K repository.Key, Filter any](
	uc usecase.EntityUsecase[Req, Resp, K, Filter],
	validator *validator.CustomValidator,
	log *logrus.Logger,
	name string,
	parseKey func(string) (K, error),
) *EntityHandler[Req, Resp, K, Filter] {
	return &EntityHandler[Req, Resp, K, Filter]{
		usecase:   uc,
		validator: validator,
		log:       log,
		name:      name,
		parseKey:  parseKey,
	}
}

func stringKey(s string) (string, error) {
	if s == "" {
		return "", errInvalidKey
	}
	return s, nil
}

func intKey(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidKey
	}
	return id, nil
}

func (h *EntityHandler[Req, Resp, K, Filter]) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	created, err := h.usecase.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "Failed to create "+h.name)
		return
	}

	response.Success(w, http.StatusCreated, capitalize(h.name)+" created successfully", created)
}

func (h *EntityHandler[Req, Resp, K, Filter]) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.usecase.Update(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "Failed to update "+h.name)
		return
	}

	response.Success(w, http.StatusOK, capitalize(h.name)+" updated successfully", updated)
}

func (h *EntityHandler[Req, Resp, K, Filter]) Get(w http.ResponseWriter, r *http.Request) {
	key, err := h.parseKey(mux.Vars(r)[KeyVar])
	if err != nil {
		response.BadRequest(w, "Invalid "+h.name+" key")
		return
	}

	found, err := h.usecase.Get(r.Context(), key)
	if err != nil {
		h.writeError(w, r, err, "Failed to get "+h.name)
		return
	}

	response.Success(w, http.StatusOK, capitalize(h.name)+" retrieved successfully", found)
}

func (h *EntityHandler[Req, Resp, K, Filter]) Delete(w http.ResponseWriter, r *http.Request) {
	key, err := h.parseKey(mux.Vars(r)[KeyVar])
	if err != nil {
		response.BadRequest(w, "Invalid "+h.name+" key")
		return
	}

	if err := h.usecase.Delete(r.Context(), key); err != nil {
		h.writeError(w, r, err, "Failed to delete "+h.name)
		return
	}

	response.Success(w, http.StatusOK, capitalize(h.name)+" deleted successfully", nil)
}

// Stream answers with every matching entity as NDJSON. An empty body means no filter.
func (h *EntityHandler[Req, Resp, K, Filter]) Stream(w http.ResponseWriter, r *http.Request) {
	var filter *Filter
	var body Filter
	switch err := json.NewDecoder(r.Body).Decode(&body); {
	case err == nil:
		filter = &body
	case errors.Is(err, io.EOF):
	default:
		response.BadRequest(w, "Invalid filter body")
		return
	}

	written, err := response.NDJSON(w, h.usecase.Stream(r.Context(), filter))
	if err == nil {
		return
	}
	if written == 0 {
		h.writeError(w, r, err, "Failed to stream "+h.name+" data")
		return
	}
	h.log.WithField("request_id", middleware.GetRequestIDFromContext(r.Context())).
		Warnf("Stream of %s aborted after %d items: %+v", h.name, written, err)
}

func (h *EntityHandler[Req, Resp, K, Filter]) decodeRequest(w http.ResponseWriter, r *http.Request) (*Req, bool) {
	var req Req
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}

	return &req, true
}

func (h *EntityHandler[Req, Resp, K, Filter]) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(w, capitalize(h.name)+" not found")
	case errors.Is(err, repository.ErrAlreadyExists):
		response.Conflict(w, capitalize(h.name)+" already exists")
	case errors.Is(err, repository.ErrReferenceViolation), errors.Is(err, usecase.ErrReferenceNotFound):
		response.PreconditionFailed(w, err.Error())
	case r.Context().Err() != nil && errors.Is(err, r.Context().Err()):
		// Client is gone.
	default:
		response.InternalServerError(w, fallback)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
