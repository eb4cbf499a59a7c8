package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"a.b+c@sub.example.com", true},
		{"user@example.com", true},
		{"user_name%tag@example.co", true},
		{"not-an-email", false},
		{"missing@domain", false},
		{"@nodomain.com", false},
		{"", false},
		{"user@.com", false},
		{"user@example.c", false},
		{"two@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.addr))
		})
	}
}

func TestIsValidEmailMemoized(t *testing.T) {
	// Repeated lookups hit the cache and stay consistent.
	for range 3 {
		assert.True(t, IsValidEmail("repeat@example.com"))
		assert.False(t, IsValidEmail("repeat-invalid"))
	}
}

func TestIsValidEmailCacheBounded(t *testing.T) {
	// Far more distinct addresses than the cache holds; results stay
	// correct when older entries are evicted.
	for i := range emailCacheSize * 3 {
		addr := fmt.Sprintf("user%d@example.com", i)
		assert.True(t, IsValidEmail(addr))
	}
	assert.LessOrEqual(t, emailCache.Len(), emailCacheSize)
	assert.True(t, IsValidEmail("user0@example.com"))
}
