package model

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusQuoted    RequestStatus = "quoted"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCompleted RequestStatus = "completed"
)

func ParseRequestStatus(raw string) (RequestStatus, bool) {
	switch RequestStatus(raw) {
	case RequestStatusPending, RequestStatusQuoted, RequestStatusAccepted,
		RequestStatusDeclined, RequestStatusCompleted:
		return RequestStatus(raw), true
	}
	return "", false
}

type QuoteRequest struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	ServicesNeeded string
	DeadlineDate   time.Time
	Message        string
	Status         RequestStatus
	CreatedAt      time.Time
}

func (QuoteRequest) TableName() string { return "quote_requests" }
