package notify

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/dmcmadeira/madeira-bookings/internal/domain"
	"github.com/dmcmadeira/madeira-bookings/pkg/logger"
)

// Sequencer supplies the two-digit suffix of a booking reference for a
// given day/experience bucket.
type Sequencer interface {
	Next(ctx context.Context, bucket string) (int, error)
}

// RandSequencer draws an unseeded random number. Two bookings on the
// same day for the same experience letter can collide; the reference is
// a display aid, not an identifier of record.
type RandSequencer struct{}

func (RandSequencer) Next(context.Context, string) (int, error) {
	return rand.Intn(100), nil
}

// ReferenceGenerator derives codes of the shape YYMMDD<L>-NN, e.g.
// 251211A-03.
type ReferenceGenerator struct {
	seq Sequencer
	now func() time.Time
}

func NewReferenceGenerator(seq Sequencer) *ReferenceGenerator {
	if seq == nil {
		seq = RandSequencer{}
	}
	return &ReferenceGenerator{seq: seq, now: time.Now}
}

// Generate returns the request's own reference when one was supplied,
// otherwise derives one from the booking date and experience ID. A
// failing sequencer degrades to a random suffix rather than failing the
// booking.
func (g *ReferenceGenerator) Generate(ctx context.Context, req *domain.BookingRequest) string {
	if ref := strings.TrimSpace(req.BookingReference); ref != "" {
		return ref
	}

	base := req.Date
	if strings.TrimSpace(base) == "" {
		base = g.now().Format("2006-01-02")
	}

	yy, mm, dd := splitISODate(base)
	letter := experienceLetter(req.ExperienceID)
	bucket := yy + mm + dd + letter

	n, err := g.seq.Next(ctx, bucket)
	if err != nil {
		logger.WarnContext(ctx, "Reference sequencer failed, falling back to random suffix",
			"bucket", bucket, "error", err)
		n = rand.Intn(100)
	}

	return fmt.Sprintf("%s-%02d", bucket, n%100)
}

func splitISODate(date string) (yy, mm, dd string) {
	parts := strings.SplitN(date, "-", 3)
	yyyy := "0000"
	mm, dd = "00", "00"
	if len(parts) > 0 && parts[0] != "" {
		yyyy = parts[0]
	}
	if len(parts) > 1 && parts[1] != "" {
		mm = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		dd = parts[2]
	}
	if len(yyyy) > 2 {
		yyyy = yyyy[len(yyyy)-2:]
	}
	return yyyy, mm, dd
}

func experienceLetter(experienceID string) string {
	for _, r := range experienceID {
		return string(unicode.ToUpper(r))
	}
	return "X"
}
