package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/facility-booking-backend/internal/booking"
)

// stubService lets each test script the service layer responses.
type stubService struct {
	createFn       func(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error)
	getByIDFn      func(ctx context.Context, id int64) (*booking.Booking, error)
	updateStatusFn func(ctx context.Context, id int64, newStatus string, approverID int64) (*booking.Booking, error)
	deleteFn       func(ctx context.Context, id int64) (bool, error)
}

func (s *stubService) Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	return s.createFn(ctx, req)
}

func (s *stubService) GetByID(ctx context.Context, id int64) (*booking.Booking, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubService) GetAll(context.Context) ([]*booking.Booking, error) { return nil, nil }

func (s *stubService) GetByUser(context.Context, int64) ([]*booking.Booking, error) {
	return nil, nil
}

func (s *stubService) GetPending(context.Context) ([]*booking.Booking, error) { return nil, nil }

func (s *stubService) UpdateStatus(ctx context.Context, id int64, newStatus string, approverID int64) (*booking.Booking, error) {
	return s.updateStatusFn(ctx, id, newStatus, approverID)
}

func (s *stubService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleteFn(ctx, id)
}

func newTestRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), NewHandler(svc))
	return r
}

func executeRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("Success", func(t *testing.T) {
		resourceID := int64(10)
		svc := &stubService{
			createFn: func(_ context.Context, req booking.CreateRequest) (*booking.Booking, error) {
				rid := req.ResourceID
				return &booking.Booking{
					ID:         1,
					ResourceID: &rid,
					UserID:     req.UserID,
					StartTime:  req.StartTime,
					EndTime:    req.EndTime,
					Status:     booking.StatusPending,
					CreatedAt:  time.Now(),
				}, nil
			},
		}

		w := executeRequest(t, newTestRouter(svc), "POST", "/bookings", CreateBookingBody{
			UserID:     1,
			ResourceID: resourceID,
			StartTime:  start,
			EndTime:    end,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, string(booking.StatusPending), resp.Status)
		assert.Nil(t, resp.ApproverID)
	})

	t.Run("Conflict maps to 409", func(t *testing.T) {
		svc := &stubService{
			createFn: func(context.Context, booking.CreateRequest) (*booking.Booking, error) {
				return nil, booking.ErrSlotConflict
			},
		}

		w := executeRequest(t, newTestRouter(svc), "POST", "/bookings", CreateBookingBody{
			UserID: 1, ResourceID: 10, StartTime: start, EndTime: end,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already booked")
	})

	t.Run("Invalid time range maps to 400", func(t *testing.T) {
		svc := &stubService{
			createFn: func(context.Context, booking.CreateRequest) (*booking.Booking, error) {
				return nil, booking.ErrInvalidTimeRange
			},
		}

		w := executeRequest(t, newTestRouter(svc), "POST", "/bookings", CreateBookingBody{
			UserID: 1, ResourceID: 10, StartTime: end, EndTime: start,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing fields rejected by binding", func(t *testing.T) {
		svc := &stubService{
			createFn: func(context.Context, booking.CreateRequest) (*booking.Booking, error) {
				t.Fatal("service must not be called for an invalid body")
				return nil, nil
			},
		}

		w := executeRequest(t, newTestRouter(svc), "POST", "/bookings", gin.H{"user_id": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingStatusEndpoint(t *testing.T) {
	t.Run("Approve", func(t *testing.T) {
		svc := &stubService{
			updateStatusFn: func(_ context.Context, id int64, newStatus string, approverID int64) (*booking.Booking, error) {
				rid := int64(10)
				st := booking.Status(newStatus)
				return &booking.Booking{ID: id, ResourceID: &rid, UserID: 1, Status: st, ApproverID: &approverID}, nil
			},
		}

		w := executeRequest(t, newTestRouter(svc), "PUT", "/bookings/7/status", UpdateStatusBody{
			Status:     string(booking.StatusApproved),
			ApproverID: 2,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, string(booking.StatusApproved), resp.Status)
		require.NotNil(t, resp.ApproverID)
		assert.Equal(t, int64(2), *resp.ApproverID)
	})

	t.Run("Invalid status maps to 400", func(t *testing.T) {
		svc := &stubService{
			updateStatusFn: func(context.Context, int64, string, int64) (*booking.Booking, error) {
				return nil, booking.ErrInvalidStatus
			},
		}

		w := executeRequest(t, newTestRouter(svc), "PUT", "/bookings/7/status", UpdateStatusBody{
			Status:     "CANCELLED",
			ApproverID: 2,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		svc := &stubService{}
		w := executeRequest(t, newTestRouter(svc), "PUT", "/bookings/abc/status", UpdateStatusBody{
			Status:     string(booking.StatusApproved),
			ApproverID: 2,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteBookingEndpoint(t *testing.T) {
	t.Run("Existing booking returns true", func(t *testing.T) {
		svc := &stubService{
			deleteFn: func(context.Context, int64) (bool, error) { return true, nil },
		}

		w := executeRequest(t, newTestRouter(svc), "DELETE", "/bookings/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Body.String())
	})

	t.Run("Missing booking returns false", func(t *testing.T) {
		svc := &stubService{
			deleteFn: func(context.Context, int64) (bool, error) { return false, nil },
		}

		w := executeRequest(t, newTestRouter(svc), "DELETE", "/bookings/42", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "false", w.Body.String())
	})
}

func TestGetBookingEndpoint(t *testing.T) {
	t.Run("Not found maps to 404", func(t *testing.T) {
		svc := &stubService{
			getByIDFn: func(context.Context, int64) (*booking.Booking, error) {
				return nil, booking.ErrNotFound
			},
		}

		w := executeRequest(t, newTestRouter(svc), "GET", "/bookings/42", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
