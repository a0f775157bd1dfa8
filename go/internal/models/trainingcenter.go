package models

import (
	"github.com/google/uuid"
)

// TrainingCenter is a facility athletes are associated with
type TrainingCenter struct {
	PkID    int32     `json:"-"`
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"nome"`
	Address string    `json:"endereco"`
	Owner   string    `json:"proprietario"`
}

// TrainingCenterRef names a training center inside another resource's payload
type TrainingCenterRef struct {
	Name string `json:"nome"`
}
