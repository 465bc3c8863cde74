package repositories

import (
	"testing"
	"time"

	"properties-api/domain"
)

// Estos tests ejercitan el nivel local del caché
// Memcached no está corriendo: sus errores de conexión se tratan
// como miss, que es exactamente el comportamiento esperado
func TestCacheRepository_SetAndGetLocal(t *testing.T) {
	cache := NewCacheRepository("localhost:0")

	properties := []domain.Property{
		{ID: 2, Address: "Calle B"},
		{ID: 1, Address: "Calle A"},
	}
	cache.SetProperties("properties:all", properties, 5*time.Minute)

	got, found := cache.GetProperties("properties:all")
	if !found {
		t.Fatal("Expected a cache hit from the local tier")
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Errorf("Cached listing did not round-trip: %+v", got)
	}
}

func TestCacheRepository_MissOnUnknownKey(t *testing.T) {
	cache := NewCacheRepository("localhost:0")

	if _, found := cache.GetProperties("properties:all"); found {
		t.Error("Expected a miss on an empty cache")
	}
}

func TestCacheRepository_DeleteInvalidates(t *testing.T) {
	cache := NewCacheRepository("localhost:0")

	cache.SetProperties("properties:all", []domain.Property{{ID: 1}}, 5*time.Minute)
	cache.Delete("properties:all")

	if _, found := cache.GetProperties("properties:all"); found {
		t.Error("Expected a miss after invalidation")
	}
}
