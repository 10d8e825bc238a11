package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

type memoryRepo struct {
	items     map[string]*domain.Reservation
	listErr   error
	updateErr error
}

func newMemoryRepo(items ...domain.Reservation) *memoryRepo {
	r := &memoryRepo{items: make(map[string]*domain.Reservation)}
	for i := range items {
		item := items[i]
		r.items[item.ID] = &item
	}
	return r
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memoryRepo) List(ctx context.Context, filter domain.ReservationsFilter) ([]domain.Reservation, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Reservation, 0)
	for _, item := range r.items {
		if filter.Status == nil || item.Status == *filter.Status {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *memoryRepo) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	item, ok := r.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	item.Status = status
	copied := *item
	return &copied, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryRepo) FindApprovedOverlappingExcept(ctx context.Context, rng domain.DateRange, excludeID string) ([]domain.Reservation, error) {
	out := make([]domain.Reservation, 0)
	for _, item := range r.items {
		if item.ID != excludeID && item.IsApproved() && item.Range().Overlaps(rng) {
			out = append(out, *item)
		}
	}
	return out, nil
}

type memoryBlocked struct {
	items []domain.BlockedDate
}

func (b *memoryBlocked) FindOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.BlockedDate, error) {
	out := make([]domain.BlockedDate, 0)
	for _, item := range b.items {
		if item.Range().Overlaps(rng) {
			out = append(out, item)
		}
	}
	return out, nil
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func reservation(id string, status domain.ReservationStatus, startDay, endDay int) domain.Reservation {
	return domain.Reservation{
		ID:        id,
		StartDate: time.Date(2025, 7, startDay, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, endDay, 0, 0, 0, 0, time.UTC),
		Status:    status,
		Guest:     domain.Guest{FirstName: "Jean", LastName: "Martin", NumberOfPeople: 2},
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newMemoryRepo(reservation("r1", domain.StatusPending, 10, 15)), &memoryBlocked{}, inlineTx{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-10", resp.StartDate)
	assert.Equal(t, "Jean", resp.FirstName)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList(t *testing.T) {
	repo := newMemoryRepo(
		reservation("r1", domain.StatusPending, 1, 5),
		reservation("r2", domain.StatusApproved, 10, 15),
		reservation("r3", domain.StatusRejected, 20, 25),
	)
	svc := NewService(repo, &memoryBlocked{}, inlineTx{}, nopLogger{})

	all, err := svc.List(context.Background(), "all")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	approved, err := svc.List(context.Background(), "approved")
	require.NoError(t, err)
	require.Equal(t, 1, approved.Total)
	assert.Equal(t, "r2", approved.Reservations[0].ID)

	_, err = svc.List(context.Background(), "cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	repo.listErr = errors.New("db down")
	_, err = svc.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatus_Approve(t *testing.T) {
	repo := newMemoryRepo(reservation("r1", domain.StatusPending, 10, 15))
	svc := NewService(repo, &memoryBlocked{}, inlineTx{}, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), "r1", "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
}

func TestUpdateStatus_ApproveRejectedWhenDatesTaken(t *testing.T) {
	t.Run("approved reservation", func(t *testing.T) {
		repo := newMemoryRepo(
			reservation("r1", domain.StatusPending, 10, 15),
			reservation("r2", domain.StatusApproved, 15, 20),
		)
		svc := NewService(repo, &memoryBlocked{}, inlineTx{}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), "r1", "approved")
		assert.ErrorIs(t, err, ErrDatesUnavailable)
		assert.Equal(t, domain.StatusPending, repo.items["r1"].Status)
	})

	t.Run("blocked period", func(t *testing.T) {
		repo := newMemoryRepo(reservation("r1", domain.StatusPending, 10, 15))
		blocked := &memoryBlocked{items: []domain.BlockedDate{{
			ID:        "b1",
			StartDate: time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC),
		}}}
		svc := NewService(repo, blocked, inlineTx{}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), "r1", "approved")
		assert.ErrorIs(t, err, ErrDatesUnavailable)
	})

	t.Run("storage constraint", func(t *testing.T) {
		repo := newMemoryRepo(reservation("r1", domain.StatusPending, 10, 15))
		repo.updateErr = reservationRepo.ErrDatesTaken
		svc := NewService(repo, &memoryBlocked{}, inlineTx{}, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), "r1", "approved")
		assert.ErrorIs(t, err, ErrDatesUnavailable)
	})
}

func TestUpdateStatus_RejectSkipsOverlapCheck(t *testing.T) {
	repo := newMemoryRepo(
		reservation("r1", domain.StatusPending, 10, 15),
		reservation("r2", domain.StatusApproved, 12, 20),
	)
	svc := NewService(repo, &memoryBlocked{}, inlineTx{}, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), "r1", "rejected")
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
}

func TestUpdateStatus_Errors(t *testing.T) {
	svc := NewService(newMemoryRepo(), &memoryBlocked{}, inlineTx{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), "r1", "done")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), "r1", "approved")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete(t *testing.T) {
	repo := newMemoryRepo(reservation("r1", domain.StatusPending, 10, 15))
	svc := NewService(repo, &memoryBlocked{}, inlineTx{}, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "r1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "r1"), ErrReservationNotFound)
}
