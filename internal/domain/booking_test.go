package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/dmcmadeira/madeira-bookings/internal/domain"
)

func TestBookingRequestDecode(t *testing.T) {
	raw := `{
		"experienceId": "kayak",
		"experienceTitle": "Kayak Tour",
		"category": "water",
		"date": "2025-06-01",
		"adults": 2,
		"children": 0,
		"totalEstimate": 150,
		"contactType": "email",
		"contactValue": "a@b.com",
		"language": "en"
	}`

	var req domain.BookingRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if req.ExperienceID != "kayak" || req.Adults != 2 || req.TotalEstimate != 150 {
		t.Errorf("unexpected decode result: %+v", req)
	}
	if !req.WantsEmail() {
		t.Error("expected email channel to be selected")
	}
	if req.WantsWhatsApp() {
		t.Error("whatsapp channel should not be selected")
	}
}

func TestBookingRequestDefaults(t *testing.T) {
	var req domain.BookingRequest
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if req.Adults != 0 || req.Children != 0 || req.SafeTotal() != 0 {
		t.Errorf("absent numerics should default to zero: %+v", req)
	}
	if req.WantsEmail() || req.WantsWhatsApp() {
		t.Error("no channel should be selected")
	}
	if len(req.ExtraInfoAnswers) != 0 {
		t.Error("extra info should be empty")
	}
}

func TestExtraInfoPreservesInsertionOrder(t *testing.T) {
	raw := `{"extraInfoAnswers": {"zeta": true, "alpha": "yes", "midKey": 3}}`

	var req domain.BookingRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	keys := make([]string, 0, len(req.ExtraInfoAnswers))
	for _, e := range req.ExtraInfoAnswers {
		keys = append(keys, e.Key)
	}

	want := []string{"zeta", "alpha", "midKey"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("order lost: got %v, want %v", keys, want)
		}
	}

	if v, ok := req.ExtraInfoAnswers[0].Value.(bool); !ok || !v {
		t.Errorf("boolean answer mangled: %#v", req.ExtraInfoAnswers[0].Value)
	}
	if v, ok := req.ExtraInfoAnswers[2].Value.(float64); !ok || v != 3 {
		t.Errorf("numeric answer mangled: %#v", req.ExtraInfoAnswers[2].Value)
	}
}

func TestExtraInfoNull(t *testing.T) {
	var req domain.BookingRequest
	if err := json.Unmarshal([]byte(`{"extraInfoAnswers": null}`), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if req.ExtraInfoAnswers != nil {
		t.Errorf("expected nil extra info, got %v", req.ExtraInfoAnswers)
	}
}

func TestExtraInfoRejectsNonObject(t *testing.T) {
	var req domain.BookingRequest
	if err := json.Unmarshal([]byte(`{"extraInfoAnswers": [1,2]}`), &req); err == nil {
		t.Error("expected error for non-object extra info")
	}
}

func TestExtraInfoRoundTrip(t *testing.T) {
	info := domain.ExtraInfo{
		{Key: "b", Value: true},
		{Key: "a", Value: "x"},
	}

	raw, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != `{"b":true,"a":"x"}` {
		t.Errorf("unexpected encoding: %s", raw)
	}
}

func TestSafeTotalNonFinite(t *testing.T) {
	req := domain.BookingRequest{TotalEstimate: math.Inf(1)}
	if req.SafeTotal() != 0 {
		t.Error("infinite total should collapse to 0")
	}

	req.TotalEstimate = math.NaN()
	if req.SafeTotal() != 0 {
		t.Error("NaN total should collapse to 0")
	}
}

func TestLangNormalization(t *testing.T) {
	cases := map[string]string{
		"PT":   "pt",
		" pt ": "pt",
		"EN":   "en",
		"":     "",
	}
	for in, want := range cases {
		req := domain.BookingRequest{Language: in}
		if got := req.Lang(); got != want {
			t.Errorf("Lang(%q) = %q, want %q", in, got, want)
		}
	}
}
