package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	events := Events(2026)

	ids := make(map[string]struct{}, len(events))
	for _, e := range events {
		ids[e.ID] = struct{}{}
		assert.Equal(t, 2026, e.Date.Year())
		assert.NotEmpty(t, e.Time)
	}

	assert.Len(t, ids, len(events))
	assert.Equal(t, "New Year Cultural Night", events[0].Name)
	assert.Equal(t, "New Year Eve Extravaganza", events[len(events)-1].Name)
	assert.Equal(t, 20, events[len(events)-1].Date.Hour())
}
