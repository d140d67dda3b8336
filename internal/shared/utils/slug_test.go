package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := map[string]string{
		"Jane Doe":           "jane-doe",
		"  Mary O'Brien!  ":  "mary-o-brien",
		"José Álvarez":       "jose-alvarez",
		"Nguyễn Nhật Ánh":    "nguyen-nhat-anh",
		"Trần Đức":           "tran-duc",
		"---":                "",
		"A  --  B":           "a-b",
		"Summer 2025 @ Lake": "summer-2025-lake",
	}

	for input, want := range tests {
		assert.Equal(t, want, GenerateSlug(input), input)
	}
}

func TestSlugOrFallback(t *testing.T) {
	now := time.UnixMilli(1735689600123)

	assert.Equal(t, "jane-doe", SlugOrFallback("Jane Doe", "entry", now))
	assert.Equal(t, "entry-1735689600123", SlugOrFallback("!!!", "entry", now))
}

func TestUniqueSlug(t *testing.T) {
	now := time.UnixMilli(1735689600123)

	assert.Equal(t, "moved-to-ohio-600123", UniqueSlug("Moved to Ohio", "timeline", now))
	assert.Equal(t, "memory-1735689600123-600123", UniqueSlug("", "memory", now))
}

func TestGenerateEditCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateEditCode())
	}
}

func TestGenerateRandomSlug(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]{10}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s := GenerateRandomSlug()
		assert.Regexp(t, pattern, s)
		seen[s] = true
	}
	assert.Greater(t, len(seen), 45)
}

func TestFirstLineAndTruncate(t *testing.T) {
	assert.Equal(t, "First line", FirstLine("  First line \nsecond line"))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "héllo", Truncate("héllo", 10))
	assert.Equal(t, "", Truncate("abc", 0))
}
