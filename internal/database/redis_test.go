package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRedisEmptyURL(t *testing.T) {
	client, err := OpenRedis(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestOpenRedisConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := OpenRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestOpenRedisBadURL(t *testing.T) {
	_, err := OpenRedis(context.Background(), "not-a-url://")
	assert.Error(t, err)
}
