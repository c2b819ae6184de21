package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSignal(t *testing.T) {

	signal := NewSignal("POST request : predict")

	assert.Equal(t, "POST request : predict", signal.Name)
	assert.NotEmpty(t, signal.ID)
	assert.WithinDuration(t, time.Now(), signal.Time, time.Second)
}

func TestSignal_Create(t *testing.T) {

	signal := NewSignal("request")
	created := signal.Create()

	signal.Name = "other"
	assert.Equal(t, "request", created.Name)
	assert.Equal(t, signal.ID, created.ID)
}
