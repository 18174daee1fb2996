package cache

import "fmt"

type EntityType string

const (
	EntityWalet EntityType = "walet"
)

type KeyType string

const (
	KeyID KeyType = "id"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entity, keyType, value)
}

// WaletKey is the cache key of a walet row.
func WaletKey(id int64) string {
	return GenerateKey(EntityWalet, KeyID, id)
}
