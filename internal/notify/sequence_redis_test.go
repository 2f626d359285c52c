package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"github.com/dmcmadeira/madeira-bookings/internal/notify"
)

func TestRedisSequencerIncrements(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectIncr("bookingref:250601K").SetVal(1)
	mock.ExpectExpire("bookingref:250601K", 48*time.Hour).SetVal(true)

	seq := notify.NewRedisSequencer(client)

	n, err := seq.Next(context.Background(), "250601K")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestRedisSequencerWrapsAtHundred(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectIncr("bookingref:250601K").SetVal(205)

	seq := notify.NewRedisSequencer(client)

	n, err := seq.Next(context.Background(), "250601K")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected wrapped value 5, got %d", n)
	}
}
