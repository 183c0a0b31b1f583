package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/user/cinema/internal/config"
	"github.com/user/cinema/internal/utils"
	"golang.org/x/sync/singleflight"
)

// refCache 参考数据（类型、国家）按 ID 的读缓存，
// 未命中时用 singleflight 合并同一 ID 的并发加载
type refCache[V any] struct {
	store *utils.TTLCache[int, V]
	sf    singleflight.Group

	mu  sync.Mutex
	gen map[int]uint64 // 每次 invalidate 递增，加载期间变化则结果不回填
}

// newRefCache Size <= 0 时不缓存，只保留并发合并
func newRefCache[V any](cfg config.CacheConfig) (*refCache[V], error) {
	c := &refCache[V]{gen: make(map[int]uint64)}
	if cfg.Size <= 0 {
		return c, nil
	}
	store, err := utils.NewTTLCache[int, V](cfg.Size, cfg.TTL)
	if err != nil {
		return nil, err
	}
	c.store = store
	return c, nil
}

// get 加载在脱离取消的 ctx 上执行，发起请求的客户端断开不影响合并进来的其他调用
func (c *refCache[V]) get(ctx context.Context, id int, load func(context.Context) (V, error)) (V, error) {
	if c.store != nil {
		if v, ok := c.store.Get(id); ok {
			return v, nil
		}
	}

	loadCtx := context.WithoutCancel(ctx)
	val, err, _ := c.sf.Do(strconv.Itoa(id), func() (interface{}, error) {
		gen := c.generation(id)
		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.fill(id, gen, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return val.(V), nil
}

func (c *refCache[V]) generation(id int) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[id]
}

// fill 仅当加载期间没有 invalidate 时回填
func (c *refCache[V]) fill(id int, gen uint64, v V) {
	if c.store == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen[id] == gen {
		c.store.Set(id, v)
	}
}

func (c *refCache[V]) invalidate(id int) {
	c.mu.Lock()
	c.gen[id]++
	if c.store != nil {
		c.store.Delete(id)
	}
	c.mu.Unlock()
	// 之后的调用不再合并到旧的加载上
	c.sf.Forget(strconv.Itoa(id))
}
