package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	now := time.Unix(1700000000, 0)
	name := ObjectName(12, "Cover.PNG", now)

	assert.True(t, strings.HasPrefix(name, "game_12_"), name)
	assert.True(t, strings.HasSuffix(name, "_1700000000.png"), name)
	assert.NotEqual(t, name, ObjectName(12, "Cover.PNG", now))
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"a.jpg":  "image/jpeg",
		"a.JPEG": "image/jpeg",
		"a.png":  "image/png",
		"a.gif":  "image/gif",
		"a.webp": "image/webp",
		"a.bin":  "application/octet-stream",
		"noext":  "application/octet-stream",
	}
	for in, want := range tests {
		assert.Equal(t, want, ContentType(in), in)
	}
}
