package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/bookingrules"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

type fakeRepo struct {
	created   []*domain.Reservation
	createErr error
}

func (r *fakeRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	res.ID = "res-1"
	res.CreatedAt = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	res.UpdatedAt = res.CreatedAt
	r.created = append(r.created, res)
	return res, nil
}

type fakeAvailability struct {
	availability  bookingrules.Verdict
	validation    bookingrules.Verdict
	err           error
	validateCalls int
	lastAdmin     bool
}

func (f *fakeAvailability) CheckAvailability(ctx context.Context, start, end time.Time, isAdministrative bool) (bookingrules.Verdict, error) {
	f.lastAdmin = isAdministrative
	return f.availability, f.err
}

func (f *fakeAvailability) ValidateBooking(ctx context.Context, start, end time.Time) (bookingrules.Verdict, error) {
	f.validateCalls++
	return f.validation, nil
}

type inlineTx struct {
	calls int
}

func (t *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		StartDate: time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 17, 0, 0, 0, 0, time.UTC),
		Guest: domain.Guest{
			FirstName:      " Marie ",
			LastName:       "Dupont",
			Email:          "Marie.Dupont@example.com",
			Phone:          "+33 6 12 34 56 78",
			Address:        "12 rue des Lilas",
			Locality:       "Saint-Malo",
			City:           "Bretagne",
			NumberOfPeople: 4,
		},
	}
}

type fixture struct {
	repo         *fakeRepo
	availability *fakeAvailability
	tx           *inlineTx
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo: &fakeRepo{},
		availability: &fakeAvailability{
			availability: bookingrules.Accepted(),
			validation:   bookingrules.Accepted(),
		},
		tx: &inlineTx{},
	}
	f.uc = NewUseCase(f.repo, f.availability, f.tx, nopLogger{}).
		WithTimeProvider(fixedTime{now: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)})
	return f
}

func TestExecute_GuestReservation(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Marie", resp.Guest.FirstName)
	assert.Equal(t, "marie.dupont@example.com", resp.Guest.Email)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.availability.validateCalls)
	assert.False(t, f.availability.lastAdmin)
}

func TestExecute_DatesUnavailable(t *testing.T) {
	f := newFixture()
	f.availability.availability = bookingrules.Rejected("Les dates sélectionnées ne sont pas disponibles.")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDatesUnavailable)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "Les dates sélectionnées ne sont pas disponibles.", rejection.Reason)
	assert.Empty(t, f.repo.created)
}

func TestExecute_RulesViolated(t *testing.T) {
	f := newFixture()
	f.availability.validation = bookingrules.Rejected("La durée minimum de séjour est de 7 jours pour cette période.")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRulesViolated)
	assert.Contains(t, err.Error(), "7 jours")
	assert.Empty(t, f.repo.created)
}

func TestExecute_AdministrativeSkipsRules(t *testing.T) {
	f := newFixture()
	f.availability.validation = bookingrules.Rejected("should not be consulted")

	req := validRequest()
	req.IsAdministrative = true
	status := "approved"
	req.Status = &status

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, 0, f.availability.validateCalls)
	assert.True(t, f.availability.lastAdmin)
}

func TestExecute_AdministrativeStillChecksOverlap(t *testing.T) {
	f := newFixture()
	f.availability.availability = bookingrules.Rejected("Les dates sélectionnées ne sont pas disponibles.")

	req := validRequest()
	req.IsAdministrative = true

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDatesUnavailable)
}

func TestExecute_ConcurrentInsertRejected(t *testing.T) {
	f := newFixture()
	f.repo.createErr = reservationRepo.ErrDatesTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatesUnavailable)
}

func TestExecute_StorageFailure(t *testing.T) {
	f := newFixture()
	f.availability.err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_DateInPast(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartDate = time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)

	req.IsAdministrative = true
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Request)
		wantErr error
	}{
		{"end equals start", func(r *Request) { r.EndDate = r.StartDate }, ErrInvalidDateRange},
		{"end before start", func(r *Request) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }, ErrInvalidDateRange},
		{"missing dates", func(r *Request) { r.StartDate = time.Time{} }, ErrInvalidInput},
		{"missing last name", func(r *Request) { r.Guest.LastName = "  " }, ErrInvalidInput},
		{"bad email", func(r *Request) { r.Guest.Email = "not-an-email" }, ErrInvalidInput},
		{"no people", func(r *Request) { r.Guest.NumberOfPeople = 0 }, ErrInvalidInput},
		{"guest sets status", func(r *Request) { s := "approved"; r.Status = &s }, ErrInvalidInput},
		{"unknown status", func(r *Request) { s := "done"; r.Status = &s; r.IsAdministrative = true }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)
			assert.ErrorIs(t, validateRequest(req), tt.wantErr)
		})
	}
}

func TestNormalizeGuest_DropsBlankMessage(t *testing.T) {
	blank := "   "
	g := normalizeGuest(domain.Guest{Message: &blank})
	assert.Nil(t, g.Message)
}
