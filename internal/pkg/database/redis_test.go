package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_HGetAll(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		mockValue     map[string]string
		mockError     error
		expectedError bool
	}{
		{
			name:      "Hash exists",
			key:       "route:live:r1",
			mockValue: map[string]string{"latitude": "40.4"},
		},
		{
			name:      "Hash missing",
			key:       "route:live:missing",
			mockValue: map[string]string{},
		},
		{
			name:          "Redis error",
			key:           "route:live:err",
			mockError:     errors.New("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}

			if tt.mockError != nil {
				mock.ExpectHGetAll(tt.key).SetErr(tt.mockError)
			} else {
				mock.ExpectHGetAll(tt.key).SetVal(tt.mockValue)
			}

			value, err := client.HGetAll(context.Background(), tt.key)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockValue, value)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_GeoRadius(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	expected := []redis.GeoLocation{
		{Name: "r1", Longitude: -3.7038, Latitude: 40.4168, Dist: 0.5},
	}
	mock.ExpectGeoRadius("routes:live", -3.70, 40.41, &redis.GeoRadiusQuery{
		Radius:    5,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}).SetVal(expected)

	locations, err := client.GeoRadius(context.Background(), "routes:live", -3.70, 40.41, 5, "km")

	require.NoError(t, err)
	assert.Equal(t, expected, locations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_ZRemAndDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectZRem("routes:live", "r1").SetVal(1)
	mock.ExpectDel("route:live:r1").SetVal(1)

	assert.NoError(t, client.ZRem(ctx, "routes:live", "r1"))
	assert.NoError(t, client.Delete(ctx, "route:live:r1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newMiniRedisClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	db := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { db.Close() })
	return &RedisClient{Client: db}, mr
}

func TestRedisClient_TxPipelined(t *testing.T) {
	client, mr := newMiniRedisClient(t)
	ctx := context.Background()

	err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, "route:live:r1", map[string]interface{}{"lat": "40.4"})
		pipe.Expire(ctx, "route:live:r1", time.Hour)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "40.4", mr.HGet("route:live:r1", "lat"))
	assert.Equal(t, time.Hour, mr.TTL("route:live:r1"))
}

func TestRedisClient_TxPipelined_Error(t *testing.T) {
	client, mr := newMiniRedisClient(t)
	ctx := context.Background()
	mr.SetError("ERR server unavailable")

	err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, "route:live:r1", map[string]interface{}{"lat": "40.4"})
		return nil
	})

	assert.Error(t, err)
	mr.SetError("")
	assert.False(t, mr.Exists("route:live:r1"))
}

func TestRedisClient_ExistingKeys(t *testing.T) {
	client, mr := newMiniRedisClient(t)
	mr.HSet("route:live:r1", "lat", "1")

	exists, err := client.ExistingKeys(context.Background(), []string{"route:live:r1", "route:live:r2"})

	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, exists)

	exists, err = client.ExistingKeys(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, exists)
}
