package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type fakeQueue struct {
	key    string
	values []any
	err    error
}

func (q *fakeQueue) RPush(_ context.Context, key string, values ...any) *redis.IntCmd {
	q.key = key
	q.values = append(q.values, values...)
	return redis.NewIntResult(int64(len(q.values)), q.err)
}

var bookingRequest = model.CreateDemoBookingRequest{
	StudentName:      "Maya",
	ParentEmail:      "parent@example.com",
	StudentGrade:     "Grade 3",
	PreferredSubject: "Science",
	PreferredDate:    "2026-05-02",
	PreferredTime:    "11:00 AM",
}

func TestBookConfirmation(t *testing.T) {
	q := &fakeQueue{}
	svc := NewBookingService(q, zerolog.Nop())

	conf, err := svc.Book(context.Background(), bookingRequest)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if conf.Title != "Demo Request Submitted!" {
		t.Errorf("unexpected title %q", conf.Title)
	}
	want := "Thank you, Maya. We've received your request for a demo in Science on May 2nd, 2026 at 11:00 AM. We'll contact you at parent@example.com shortly."
	if conf.Message != want {
		t.Errorf("message:\n got %q\nwant %q", conf.Message, want)
	}

	if q.key != config.WorkerKey.PersistDemoBookingsQueue || len(q.values) != 1 {
		t.Fatalf("booking not queued: key=%q values=%d", q.key, len(q.values))
	}
	var queued model.DemoBooking
	if err := json.Unmarshal(q.values[0].([]byte), &queued); err != nil {
		t.Fatalf("decode queued booking: %v", err)
	}
	if queued.ID != conf.ID || queued.StudentGrade != "Grade 3" {
		t.Errorf("unexpected queued booking %+v", queued)
	}
	if y, m, d := queued.PreferredDate.Date(); y != 2026 || m != time.May || d != 2 {
		t.Errorf("unexpected preferred date %v", queued.PreferredDate)
	}
}

func TestBookQueueFailureIsNotSurfaced(t *testing.T) {
	svc := NewBookingService(&fakeQueue{err: errors.New("redis down")}, zerolog.Nop())

	conf, err := svc.Book(context.Background(), bookingRequest)
	if err != nil || conf == nil {
		t.Fatalf("expected confirmation despite queue failure, got %v, %v", conf, err)
	}
}

func TestOrdinal(t *testing.T) {
	testCases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 31: "31st"}
	for n, want := range testCases {
		if got := ordinal(n); got != want {
			t.Errorf("ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestBookLogsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	svc := NewBookingService(&fakeQueue{}, zerolog.New(&buf))

	r := gin.New()
	r.Use(response.RequestIDMiddleware())
	r.POST("/", func(c *gin.Context) {
		if _, err := svc.Book(c.Request.Context(), bookingRequest); err != nil {
			t.Errorf("Book: %v", err)
		}
	})
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Request-ID", "req-booking-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "req-booking-1" || entry["booking_id"] == "" {
		t.Errorf("log entry = %v", entry)
	}
}
