package storage

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	name := ObjectName("poster.jpg", now)
	assert.Regexp(t, regexp.MustCompile(`^1700000000000_[0-9a-z]{9}\.jpg$`), name)

	// The original extension is preserved, including multi-dot names.
	name = ObjectName("cut.final.webp", now)
	assert.Regexp(t, regexp.MustCompile(`^1700000000000_[0-9a-z]{9}\.webp$`), name)

	// No extension means no trailing dot.
	name = ObjectName("raw", now)
	assert.Regexp(t, regexp.MustCompile(`^1700000000000_[0-9a-z]{9}$`), name)
}

func TestObjectName_CollisionResistance(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		name := ObjectName("a.png", now)
		_, dup := seen[name]
		assert.False(t, dup, "generated duplicate name %s", name)
		seen[name] = struct{}{}
	}
}
