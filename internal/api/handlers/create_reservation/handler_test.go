package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	got *createReservation.Request
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createReservation.Response{
		ID:        "r1",
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    "pending",
		Guest:     req.Guest,
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"startDate": "2025-07-14",
	"endDate": "2025-07-21",
	"firstName": "Marie",
	"lastName": "Dupont",
	"email": "marie@example.com",
	"phone": "+33600000000",
	"address": "1 rue de la Paix",
	"locality": "Centre",
	"city": "Nice",
	"numberOfPeople": 2
}`

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(NewHandler(uc, nopLogger{}), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.False(t, uc.got.IsAdministrative)
	assert.Equal(t, "Nice", uc.got.Guest.City)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, "2025-07-14", resp.StartDate)
	assert.Equal(t, "2025-07-21", resp.EndDate)
}

func TestHandle_AdminHandlerMarksAdministrative(t *testing.T) {
	uc := &fakeUseCase{}
	body := strings.Replace(validBody, `"numberOfPeople": 2`, `"numberOfPeople": 2, "status": "approved"`, 1)

	rec := serve(NewAdminHandler(uc, nopLogger{}), body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, uc.got.IsAdministrative)
	require.NotNil(t, uc.got.Status)
	assert.Equal(t, "approved", *uc.got.Status)
}

func TestHandle_Errors(t *testing.T) {
	rulesReason := "La durée minimum de séjour est de 7 jours pour cette période."

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "malformed json", body: `{`, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidRequestBody},
		{name: "bad date", body: strings.Replace(validBody, "2025-07-14", "14/07/2025", 1), wantStatus: http.StatusBadRequest, wantMsg: msgInvalidDate},
		{name: "dates unavailable", body: validBody, err: createReservation.NewRejectionError(createReservation.ErrDatesUnavailable, ""), wantStatus: http.StatusConflict, wantMsg: msgDatesUnavailable},
		{name: "rules violated", body: validBody, err: createReservation.NewRejectionError(createReservation.ErrRulesViolated, rulesReason), wantStatus: http.StatusUnprocessableEntity, wantMsg: rulesReason},
		{name: "invalid range", body: validBody, err: createReservation.ErrInvalidDateRange, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidDateRange},
		{name: "invalid input", body: validBody, err: fmt.Errorf("%w: email", createReservation.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantMsg: msgInvalidInput},
		{name: "date in past", body: validBody, err: createReservation.ErrDateInPast, wantStatus: http.StatusBadRequest, wantMsg: msgDateInPast},
		{name: "internal", body: validBody, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}
