package http

import (
	"context"
	"iter"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"appointment-data-proxy/config"
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/delivery/http/handler"
	"appointment-data-proxy/internal/delivery/http/middleware"
	"appointment-data-proxy/internal/domain/repository"
	"appointment-data-proxy/pkg/jwt"
	"appointment-data-proxy/pkg/validator"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsecase answers every call with a zero value.
type stubUsecase[Req any, Resp any, K repository.Key, Filter any] struct{}

func (stubUsecase[Req, Resp, K, Filter]) Get(context.Context, K) (*Resp, error) { return new(Resp), nil }
func (stubUsecase[Req, Resp, K, Filter]) Create(context.Context, *Req) (*Resp, error) {
	return new(Resp), nil
}
func (stubUsecase[Req, Resp, K, Filter]) Update(context.Context, *Req) (*Resp, error) {
	return new(Resp), nil
}
func (stubUsecase[Req, Resp, K, Filter]) Delete(context.Context, K) error { return nil }
func (stubUsecase[Req, Resp, K, Filter]) Stream(context.Context, *Filter) iter.Seq2[Resp, error] {
	return func(func(Resp, error) bool) {}
}

func newTestRouter(t *testing.T) (http.Handler, *jwt.JWTService) {
	t.Helper()
	log, _ := test.NewNullLogger()
	v := validator.NewValidator()
	svc := jwt.NewJWTService(config.AuthConfig{Secret: "router-secret"})

	handlers := Handlers{
		Patient:          handler.NewPatientHandler(stubUsecase[dto.PatientRequest, dto.PatientResponse, string, dto.PatientFilter]{}, v, log),
		Practice:         handler.NewPracticeHandler(stubUsecase[dto.PracticeRequest, dto.PracticeResponse, string, dto.PracticeFilter]{}, v, log),
		FixedRemedy:      handler.NewFixedRemedyHandler(stubUsecase[dto.FixedRemedyRequest, dto.FixedRemedyResponse, string, dto.FixedRemedyFilter]{}, v, log),
		Therapist:        handler.NewTherapistHandler(stubUsecase[dto.TherapistRequest, dto.TherapistResponse, int, dto.TherapistFilter]{}, v, log),
		IndividualRemedy: handler.NewIndividualRemedyHandler(stubUsecase[dto.IndividualRemedyRequest, dto.IndividualRemedyResponse, int, dto.IndividualRemedyFilter]{}, v, log),
		Appointment:      handler.NewAppointmentHandler(stubUsecase[dto.AppointmentRequest, dto.AppointmentResponse, int, dto.AppointmentFilter]{}, v, log),
	}

	router := NewRouter(handlers,
		middleware.NewAuthMiddleware(svc, nil, log),
		middleware.NewLoggingMiddleware(log),
		middleware.NewCORSMiddleware(),
	)
	return router.Setup(), svc
}

func TestRouter_HealthIsPublic(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_ScopesPerDatabase(t *testing.T) {
	r, svc := newTestRouter(t)
	general, err := svc.GenerateToken("c", []string{jwt.ScopeGeneral}, time.Minute)
	require.NoError(t, err)
	customer, err := svc.GenerateToken("c", []string{jwt.ScopeCustomer}, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		token  string
		want   int
	}{
		{http.MethodGet, "/api/v1/patients/A1", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/patients/A1", general, http.StatusOK},
		{http.MethodGet, "/api/v1/patients/A1", customer, http.StatusForbidden},
		{http.MethodPost, "/api/v1/practices/stream", general, http.StatusOK},
		{http.MethodDelete, "/api/v1/fixed-remedies/X01", general, http.StatusOK},
		{http.MethodGet, "/api/v1/therapists/1", customer, http.StatusOK},
		{http.MethodGet, "/api/v1/therapists/1", general, http.StatusForbidden},
		{http.MethodPost, "/api/v1/individual-remedies/stream", customer, http.StatusOK},
		{http.MethodDelete, "/api/v1/appointments/7", customer, http.StatusOK},
		{http.MethodPost, "/api/v1/appointments/stream", general, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
