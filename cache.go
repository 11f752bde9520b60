package nodefactory

import (
	"fmt"
	"reflect"

	lru "github.com/hashicorp/golang-lru"
)

// Cache memoizes the facades built for library instances. Instances whose
// type is not comparable are never cached. It is safe for concurrent use.
type Cache struct {
	facades *lru.TwoQueueCache
	opts    []Option
}

// NewCache returns a cache holding as many facades as the
// NODEFACTORY_FACADE_CACHE_SIZE environment variable says, 64 by default or
// when the variable holds a size below 2.
// The options are used for every facade the cache builds.
func NewCache(opts ...Option) *Cache {
	c, err := NewCacheSize(facadeCacheSize(), opts...)
	if err != nil {
		panic(fmt.Errorf("cannot initialize facade cache: %s", err))
	}
	return c
}

// NewCacheSize returns a cache holding at most size facades. The size must
// be at least 2.
func NewCacheSize(size int, opts ...Option) (*Cache, error) {
	facades, err := lru.New2Q(size)
	if err != nil {
		return nil, err
	}
	return &Cache{facades, opts}, nil
}

// Get returns the facade of lib, building it on first use.
func (c *Cache) Get(lib interface{}) (Factory, error) {
	if lib == nil || !reflect.TypeOf(lib).Comparable() {
		return BuildFacade(lib, c.opts...)
	}

	if f, ok := c.facades.Get(lib); ok {
		return f.(Factory), nil
	}

	f, err := BuildFacade(lib, c.opts...)
	if err != nil {
		return nil, err
	}

	c.facades.Add(lib, f)
	return f, nil
}

// Len returns the number of cached facades.
func (c *Cache) Len() int {
	return c.facades.Len()
}

// Purge drops every cached facade.
func (c *Cache) Purge() {
	c.facades.Purge()
}
