package api

import (
	"time"

	"github.com/google/uuid"
)

// Block allows 2 processes to sync
type Block struct {
	// Action block.Action <- api.Signal{}
	Action chan Signal
	// ReAction	<-block.ReAction
	ReAction chan Signal
}

func NewBlock() Block {
	return Block{
		Action:   make(chan Signal),
		ReAction: make(chan Signal),
	}
}

// Signal is a generic struct used to trigger actions on other processes.
// it can hold metadata information , but for now we only track name and time.
type Signal struct {
	Name string
	ID   string
	Time time.Time
}

// NewSignal creates a new signal with the given name.
func NewSignal(name string) *Signal {
	return &Signal{
		Name: name,
		Time: time.Now(),
		ID:   uuid.New().String(),
	}
}

// Create returns an immutable instance of the signal
func (a *Signal) Create() Signal {
	return *a
}
