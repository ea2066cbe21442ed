package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBaseURI(t *testing.T) {
	assert.Equal(t, "https://intake.eventplatform.dev", SelectBaseURI(""))
	assert.Equal(t, "https://custom.example.com", SelectBaseURI("https://custom.example.com"))
	assert.Equal(t, "https://custom.example.com", SelectBaseURI("https://custom.example.com/"))
}

func TestAddPath(t *testing.T) {
	assert.Equal(t, "https://x/v1/events", AddPath("https://x", "/v1/events"))
	assert.Equal(t, "https://x/v1/events", AddPath("https://x/", "v1/events"))
}
