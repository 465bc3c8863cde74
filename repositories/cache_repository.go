package repositories

import (
	"log"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/goccy/go-json"
	"github.com/karlseguin/ccache/v3"

	"properties-api/domain"
)

// CacheRepository define la interfaz para el caché del listado
type CacheRepository interface {
	GetProperties(key string) ([]domain.Property, bool)
	SetProperties(key string, properties []domain.Property, ttl time.Duration)
	Delete(key string)
}

// cacheData representa los datos almacenados en caché
type cacheData struct {
	Properties []domain.Property `json:"properties"`
}

// cacheRepository implementa CacheRepository con dos niveles:
// ccache local (rápido, por instancia) y Memcached (compartido)
type cacheRepository struct {
	localCache      *ccache.Cache[*cacheData]
	memcachedClient *memcache.Client
}

// TTLs por nivel: el local expira antes que el distribuido
const (
	localCacheTTL     = 5 * time.Minute
	memcachedTTLSecs  = int32(15 * 60)
)

// NewCacheRepository crea una nueva instancia de CacheRepository
func NewCacheRepository(memcachedHost string) CacheRepository {
	localCache := ccache.New(ccache.Configure[*cacheData]().MaxSize(100))
	memcachedClient := memcache.New(memcachedHost)

	log.Printf("Cache repository initialized with Memcached at %s", memcachedHost)

	return &cacheRepository{
		localCache:      localCache,
		memcachedClient: memcachedClient,
	}
}

// GetProperties obtiene el listado del caché (primero local, luego Memcached)
func (r *cacheRepository) GetProperties(key string) ([]domain.Property, bool) {
	// 1. Buscar en caché local primero
	item := r.localCache.Get(key)
	if item != nil && !item.Expired() {
		log.Printf("Cache HIT (local): key=%s", key)
		return item.Value().Properties, true
	}

	// 2. Si no está en local, buscar en Memcached
	memcachedItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if err == memcache.ErrCacheMiss {
			log.Printf("Cache MISS: key=%s", key)
		} else {
			log.Printf("Error getting from Memcached: key=%s, error=%v", key, err)
		}
		return nil, false
	}

	var data cacheData
	if err := json.Unmarshal(memcachedItem.Value, &data); err != nil {
		log.Printf("Error unmarshaling cache data from Memcached: key=%s, error=%v", key, err)
		return nil, false
	}

	// 3. Guardar en caché local para próximas consultas
	r.localCache.Set(key, &data, localCacheTTL)
	log.Printf("Cache HIT (Memcached): key=%s, stored in local cache", key)

	return data.Properties, true
}

// SetProperties guarda el listado en ambos niveles de caché
func (r *cacheRepository) SetProperties(key string, properties []domain.Property, ttl time.Duration) {
	data := &cacheData{Properties: properties}

	r.localCache.Set(key, data, ttl)
	log.Printf("Cache SET (local): key=%s, ttl=%s", key, ttl)

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshaling cache data for Memcached: key=%s, error=%v", key, err)
		return
	}

	memcachedItem := &memcache.Item{
		Key:        key,
		Value:      jsonData,
		Expiration: memcachedTTLSecs,
	}
	if err := r.memcachedClient.Set(memcachedItem); err != nil {
		log.Printf("Error setting cache in Memcached: key=%s, error=%v", key, err)
		return
	}

	log.Printf("Cache SET (Memcached): key=%s, ttl=15m", key)
}

// Delete invalida el listado en ambos niveles de caché
// Se llama después de cada escritura (create/update/delete)
func (r *cacheRepository) Delete(key string) {
	r.localCache.Delete(key)
	log.Printf("Cache DELETE (local): key=%s", key)

	if err := r.memcachedClient.Delete(key); err != nil {
		if err == memcache.ErrCacheMiss {
			log.Printf("Cache DELETE (Memcached): key=%s (not found)", key)
			return
		}
		log.Printf("Error deleting from Memcached: key=%s, error=%v", key, err)
		return
	}

	log.Printf("Cache DELETE (Memcached): key=%s", key)
}
