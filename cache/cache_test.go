package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetMissesOnEmptyCache(t *testing.T) {
	c := New[int](0)
	_, ok := c.Get("streak", 1)
	assert.False(t, ok)
}

func TestPutThenGetSameRevision(t *testing.T) {
	c := New[int](0)
	c.Put("streak", 7, 3)

	v, ok := c.Get("streak", 7)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestRevisionMismatchInvalidates(t *testing.T) {
	c := New[int](0)
	c.Put("streak", 7, 3)

	_, ok := c.Get("streak", 8)
	assert.False(t, ok)
}

func TestZeroTTLNeverAgesOut(t *testing.T) {
	c := New[int](0)
	c.Put("streak", 1, 5)

	time.Sleep(20 * time.Millisecond)
	v, ok := c.Get("streak", 1)
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestTTLExpiry(t *testing.T) {
	c := New[string](10 * time.Millisecond)
	c.Put("k", 1, "v")

	v, ok := c.Get("k", 1)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	time.Sleep(25 * time.Millisecond)
	_, ok = c.Get("k", 1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len()) // expired entry was dropped
}

func TestKeysAreIndependent(t *testing.T) {
	c := New[int](0)
	c.Put("avg_7", 1, 60)
	c.Put("avg_30", 1, 45)

	v, ok := c.Get("avg_7", 1)
	assert.True(t, ok)
	assert.Equal(t, 60, v)

	v, ok = c.Get("avg_30", 1)
	assert.True(t, ok)
	assert.Equal(t, 45, v)
}

func TestPurge(t *testing.T) {
	c := New[int](0)
	c.Put("a", 1, 1)
	c.Put("b", 1, 2)
	c.Purge()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a", 1)
	assert.False(t, ok)
}
