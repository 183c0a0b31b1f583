package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCacheExpires(t *testing.T) {
	c, err := NewTTLCache[int, string](2, time.Minute)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set(1, "one")
	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestTTLCacheEvictsOldest(t *testing.T) {
	c, err := NewTTLCache[int, string](2, time.Minute)
	require.NoError(t, err)

	c.Set(1, "a")
	c.Set(2, "b")
	c.Set(3, "c")

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Delete(2)
	_, ok = c.Get(2)
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestNewTTLCacheRejectsBadSize(t *testing.T) {
	_, err := NewTTLCache[int, int](0, time.Minute)
	assert.Error(t, err)
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", StatusName(http.StatusNotFound))
	assert.Equal(t, "BAD_REQUEST", StatusName(http.StatusBadRequest))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", StatusName(http.StatusInternalServerError))
	assert.Equal(t, "CONFLICT", StatusName(http.StatusConflict))
}

func TestErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusNotFound, "Movie not found with id: 3", "")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(404), body["code"])
	assert.Equal(t, "NOT_FOUND", body["status"])
	assert.NotContains(t, body, "details")

	_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
	assert.NoError(t, err)
}
