package model

import "time"

type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusDeclined QuotationStatus = "declined"
)

type Quotation struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	QuoteRequestID int64
	// PriceAmount is in the smallest currency unit.
	PriceAmount  int64
	Description  string
	ValidityDate time.Time
	Status       QuotationStatus
	CreatedAt    time.Time
}

func (Quotation) TableName() string { return "quotations" }
