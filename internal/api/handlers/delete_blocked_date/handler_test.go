package delete_blocked_date

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/internal/service/blockeddates"
)

type fakeService struct {
	existing map[string]bool
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	if !f.existing[id] {
		return blockeddates.ErrBlockedDateNotFound
	}
	delete(f.existing, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &fakeService{existing: map[string]bool{"b1": true}}
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/blocked-dates/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/blocked-dates/b1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/blocked-dates/b1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
