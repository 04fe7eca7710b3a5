package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/nurpe/printhub-quotes/internal/model"
)

func TestGenerator_Generate(t *testing.T) {
	doc := model.QuotationDocument{
		Quotation: model.Quotation{
			ID:             1,
			QuoteRequestID: 1,
			PriceAmount:    15000,
			Description:    "A4 flyers x500",
			ValidityDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			Status:         model.QuotationStatusPending,
			CreatedAt:      time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
		Request: model.QuoteRequest{
			ID:             1,
			CustomerName:   "Aigerim S.",
			CustomerEmail:  "aigerim@example.com",
			CustomerPhone:  "+7 701 123 4567",
			ServicesNeeded: "A4 flyers x500",
			DeadlineDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:      time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		},
		Shop: model.ShopIdentity{
			Name:    "PrintHub",
			Address: "12 Abay Ave, Almaty",
			Phone:   "+7 727 000 0000",
			Email:   "hello@printhub.kz",
		},
	}

	content, err := NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got %q...", content[:min(8, len(content))])
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{15000, "150.00"},
		{123456, "1234.56"},
		{-250, "-2.50"},
	}
	for _, tc := range cases {
		if got := formatAmount(tc.amount); got != tc.want {
			t.Errorf("formatAmount(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
