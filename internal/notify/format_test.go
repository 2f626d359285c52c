package notify_test

import (
	"strings"
	"testing"

	"github.com/dmcmadeira/madeira-bookings/internal/domain"
	"github.com/dmcmadeira/madeira-bookings/internal/notify"
)

func TestFormatExtraInfoEmpty(t *testing.T) {
	cases := []struct {
		name    string
		entries domain.ExtraInfo
	}{
		{"nil", nil},
		{"empty", domain.ExtraInfo{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := notify.FormatExtraInfo(tc.entries)
			if got != "No additional information provided." {
				t.Errorf("expected fixed sentence, got %q", got)
			}
		})
	}
}

func TestFormatExtraInfoLines(t *testing.T) {
	entries := domain.ExtraInfo{
		{Key: "hasAllergies", Value: true},
		{Key: "dietaryRestrictions", Value: "vegetarian"},
		{Key: "needsPickup", Value: false},
		{Key: "roomNumber", Value: ""},
		{Key: "groupSize", Value: float64(4)},
	}

	got := notify.FormatExtraInfo(entries)
	want := strings.Join([]string{
		"Has Allergies: Yes",
		"Dietary Restrictions: vegetarian",
		"Needs Pickup: No",
		"Room Number: None indicated",
		"Group Size: 4",
	}, "\n")

	if got != want {
		t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
	}

	if lines := strings.Split(got, "\n"); len(lines) != len(entries) {
		t.Errorf("expected %d lines, got %d", len(entries), len(lines))
	}
}

func TestFormatExtraInfoPreservesOrder(t *testing.T) {
	entries := domain.ExtraInfo{
		{Key: "zeta", Value: "last answered first"},
		{Key: "alpha", Value: "first answered last"},
	}

	got := notify.FormatExtraInfo(entries)
	if strings.Index(got, "Zeta") > strings.Index(got, "Alpha") {
		t.Errorf("entries reordered: %q", got)
	}
}

func TestHumanizeKeyIdempotentOnHumanizedLabels(t *testing.T) {
	// A label that already carries spaces before its capitals must pass
	// through unchanged.
	entries := domain.ExtraInfo{{Key: "Has Allergies", Value: true}}

	got := notify.FormatExtraInfo(entries)
	if got != "Has Allergies: Yes" {
		t.Errorf("re-humanizing changed the label: %q", got)
	}
}

func TestFormatExtraInfoWhitespaceOnlyString(t *testing.T) {
	entries := domain.ExtraInfo{{Key: "notes", Value: "   "}}

	got := notify.FormatExtraInfo(entries)
	if got != "Notes: None indicated" {
		t.Errorf("expected None indicated, got %q", got)
	}
}
