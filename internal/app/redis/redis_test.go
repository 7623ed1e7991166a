package redis

import (
	"context"
	"testing"
	"time"

	"gamerental/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func TestBlacklistKey(t *testing.T) {
	assert.Equal(t, "jwt.abc.def", blacklistKey("abc.def"))
}

func TestNewFailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, config.RedisConfig{
		Host:        "127.0.0.1",
		Port:        1,
		DialTimeout: 200 * time.Millisecond,
		ReadTimeout: 200 * time.Millisecond,
	})
	assert.Error(t, err)
}
