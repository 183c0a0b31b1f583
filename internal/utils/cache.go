package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheItem 包装实际的数据，增加过期时间
type cacheItem[V any] struct {
	Value     V
	ExpiredAt time.Time
}

// TTLCache 带过期时间的 LRU 缓存，并发安全
type TTLCache[K comparable, V any] struct {
	storage *lru.Cache[K, cacheItem[V]]
	ttl     time.Duration
	now     func() time.Time
}

// NewTTLCache size 是最大缓存条数，ttl 是数据有效期
func NewTTLCache[K comparable, V any](size int, ttl time.Duration) (*TTLCache[K, V], error) {
	c, err := lru.New[K, cacheItem[V]](size)
	if err != nil {
		return nil, err
	}
	return &TTLCache[K, V]{
		storage: c,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// Set 新增或覆盖
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.storage.Add(key, cacheItem[V]{
		Value:     value,
		ExpiredAt: c.now().Add(c.ttl),
	})
}

// Get 命中且未过期时返回
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	var zero V
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if c.now().After(item.ExpiredAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return item.Value, true
}

func (c *TTLCache[K, V]) Delete(key K) {
	c.storage.Remove(key)
}

func (c *TTLCache[K, V]) Clear() {
	c.storage.Purge()
}

func (c *TTLCache[K, V]) Len() int {
	return c.storage.Len()
}
