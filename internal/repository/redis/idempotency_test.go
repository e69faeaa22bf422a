package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoredResult(t *testing.T) {
	status, payload, ok, err := parseStoredResult(`RES:201:{"success":true,"note":"a:b"}`)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 201, status)
	assert.Equal(t, `{"success":true,"note":"a:b"}`, payload)

	_, _, ok, err = parseStoredResult("LOCK")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, _, err = parseStoredResult("RES:abc")
	assert.Error(t, err)
}

func TestToInt(t *testing.T) {
	assert.EqualValues(t, 3, toInt(int64(3)))
	assert.EqualValues(t, 4, toInt(4))
	assert.EqualValues(t, 5, toInt(float64(5)))
	assert.EqualValues(t, 6, toInt("6"))
	assert.EqualValues(t, 0, toInt(nil))
}

func TestNilCache(t *testing.T) {
	var c *Cache

	v, err := GetOrSetJSON(t.Context(), c, "k", 0, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	assert.NoError(t, c.InvalidateHouse(t.Context(), "h1"))
	assert.NoError(t, c.InvalidateTranslations(t.Context(), "en"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "housedraw:v1:house:h1:results", KeyHouseResults("h1"))
	assert.Equal(t, "housedraw:v1:rl:purchase:ip:1.2.3.4", KeyRateLimit("purchase", "ip:1.2.3.4"))
	assert.Equal(t, "housedraw:v1:idem:purchases:h1:abc", KeyIdemPurchase("h1", "abc"))
}
