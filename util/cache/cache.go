package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	CACHE_PATH string = filepath.Join(getHomeDir(), ".algosend", "cache.json")
	cache      *simpleCache
	mu         sync.Mutex
)

func getHomeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return dir
}

type simpleCache struct {
	Data map[string]string `json:"Data"`
}

func (self *simpleCache) Persist() error {
	jsonData, err := json.MarshalIndent(self, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(CACHE_PATH), 0o755); err != nil {
		return err
	}
	return os.WriteFile(CACHE_PATH, jsonData, 0o644)
}

func loadSimpleCache() *simpleCache {
	if cache != nil {
		return cache
	}
	cache = &simpleCache{
		Data: map[string]string{},
	}
	content, err := os.ReadFile(CACHE_PATH)
	if err != nil {
		// WARNING: swallow error here, a missing cache is an empty cache
		return cache
	}
	if err = json.Unmarshal(content, cache); err != nil || cache.Data == nil {
		cache.Data = map[string]string{}
	}
	return cache
}

// Reset drops the in-memory copy so the next access reloads CACHE_PATH.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = nil
}

func GetCache(key string) (string, bool) {
	mu.Lock()
	defer mu.Unlock()

	value, found := loadSimpleCache().Data[strings.ToLower(key)]
	if !found {
		return "", false
	}
	return value, true
}

func SetCache(key, value string) error {
	mu.Lock()
	defer mu.Unlock()
	c := loadSimpleCache()
	c.Data[strings.ToLower(key)] = value
	return c.Persist()
}

// GetJSONCache decodes the value stored at key into v. It reports false when
// the key is missing or its value doesn't decode into v.
func GetJSONCache(key string, v any) bool {
	raw, found := GetCache(key)
	if !found {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

func SetJSONCache(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return SetCache(key, string(raw))
}
