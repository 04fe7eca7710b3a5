package model

import "time"

type SenderType string

const (
	SenderAdmin    SenderType = "admin"
	SenderCustomer SenderType = "customer"
)

func ParseSenderType(raw string) (SenderType, bool) {
	switch SenderType(raw) {
	case SenderAdmin, SenderCustomer:
		return SenderType(raw), true
	}
	return "", false
}

type Message struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	QuoteRequestID int64
	SenderType     SenderType
	Content        string
	CreatedAt      time.Time
}

func (Message) TableName() string { return "messages" }
