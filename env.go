package nodefactory

import (
	"os"
	"strconv"
)

const (
	facadeCacheSizeKey     = "NODEFACTORY_FACADE_CACHE_SIZE"
	defaultFacadeCacheSize = 64
	// 2Q caches split their size between queues and need two slots.
	minFacadeCacheSize     = 2
)

func getIntEnv(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(val)
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func facadeCacheSize() int {
	size := getIntEnv(facadeCacheSizeKey, defaultFacadeCacheSize)
	if size < minFacadeCacheSize {
		return defaultFacadeCacheSize
	}
	return size
}
