package application

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

type Submitted struct {
	ApplicationID string    `json:"applicationId"`
	UserID        int64     `json:"userId"`
	Kind          string    `json:"kind"`
	At            time.Time `json:"at"`
}

func (e Submitted) EventName() string     { return "application.submitted" }
func (e Submitted) AggregateID() string   { return e.ApplicationID }
func (e Submitted) OccurredAt() time.Time { return e.At }

type Reviewed struct {
	ApplicationID string    `json:"applicationId"`
	UserID        int64     `json:"userId"`
	Kind          string    `json:"kind"`
	Status        string    `json:"status"`
	ReviewedBy    int64     `json:"reviewedBy"`
	Notes         string    `json:"notes,omitempty"`
	At            time.Time `json:"at"`
}

func (e Reviewed) EventName() string     { return "application.reviewed" }
func (e Reviewed) AggregateID() string   { return e.ApplicationID }
func (e Reviewed) OccurredAt() time.Time { return e.At }

var (
	_ kernel.DomainEvent = Submitted{}
	_ kernel.DomainEvent = Reviewed{}
)
