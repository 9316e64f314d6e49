package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("", "anything"))
	assert.True(t, MatchesSearch("ruby", "Ruby Ring", "ring"))
	assert.True(t, MatchesSearch("RUBY", "loose ruby"))
	assert.True(t, MatchesSearch("  ruby  ", "ruby"))
	assert.False(t, MatchesSearch("emerald", "Ruby Ring", "ring"))
}

func TestMatchesStatus(t *testing.T) {
	assert.True(t, MatchesStatus("all", "pending"))
	assert.True(t, MatchesStatus("", "pending"))
	assert.True(t, MatchesStatus("Pending", "pending"))
	assert.False(t, MatchesStatus("shipped", "pending"))
}
