package services

import (
	"context"
	"log"
	"time"

	"properties-api/domain"
	"properties-api/dto"
	"properties-api/publishers"
	"properties-api/repositories"
)

// Clave única del listado en caché: hay una sola vista (todas las
// propiedades ordenadas por id descendente)
const propertiesCacheKey = "properties:all"

// PropertyService define la interfaz del servicio de propiedades
type PropertyService interface {
	GetAllProperties(ctx context.Context) ([]domain.Property, error)
	GetPropertyByID(ctx context.Context, id uint) (*domain.Property, error)
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) error
	UpdateProperty(ctx context.Context, req dto.EditPropertyRequest) error
	DeleteProperty(ctx context.Context, id uint) error
	UploadImages(ctx context.Context, files []dto.UploadFile) ([]dto.UploadedAsset, error)
	CleanupAssets(ctx context.Context, keys []string)
}

// propertyService es la implementación real del servicio
type propertyService struct {
	repo      repositories.PropertyRepository
	assetRepo repositories.AssetRepository
	cacheRepo repositories.CacheRepository
	publisher publishers.EventPublisher // puede ser nil si RabbitMQ está deshabilitado
}

// NewPropertyService crea una nueva instancia del servicio
func NewPropertyService(
	repo repositories.PropertyRepository,
	assetRepo repositories.AssetRepository,
	cacheRepo repositories.CacheRepository,
	publisher publishers.EventPublisher,
) PropertyService {
	return &propertyService{
		repo:      repo,
		assetRepo: assetRepo,
		cacheRepo: cacheRepo,
		publisher: publisher,
	}
}

// GetAllProperties devuelve todas las propiedades (más nuevas primero)
// Primero intenta el caché; si no está, va a la base y lo guarda
func (s *propertyService) GetAllProperties(ctx context.Context) ([]domain.Property, error) {
	if properties, found := s.cacheRepo.GetProperties(propertiesCacheKey); found {
		return properties, nil
	}

	properties, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	s.cacheRepo.SetProperties(propertiesCacheKey, properties, 5*time.Minute)
	return properties, nil
}

// GetPropertyByID devuelve una propiedad por su id (para la ficha)
func (s *propertyService) GetPropertyByID(ctx context.Context, id uint) (*domain.Property, error) {
	return s.repo.GetByID(id)
}

// CreateProperty inserta una propiedad ya validada
// Las imágenes ya están subidas al object store: si la escritura en la
// base falla, hay que borrarlas para no pagar por archivos huérfanos
// (acción compensatoria del "saga" subir-luego-insertar)
func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) error {
	property := payloadToProperty(req.PropertyPayload)
	property.Images = req.Images
	property.ImageKeys = req.ImageKeys

	if err := s.repo.Create(property); err != nil {
		log.Printf("Error creating property, cleaning up %d uploaded assets: %v", len(req.ImageKeys), err)
		s.CleanupAssets(ctx, req.ImageKeys)
		return err
	}

	s.cacheRepo.Delete(propertiesCacheKey)
	s.publishEvent(publishers.ActionCreate, property.ID)
	return nil
}

// UpdateProperty reemplaza los campos editables de una propiedad
// Los assets quedan como estaban: no se pueden cambiar después de crear
func (s *propertyService) UpdateProperty(ctx context.Context, req dto.EditPropertyRequest) error {
	existing, err := s.repo.GetByID(*req.ID)
	if err != nil {
		return err
	}

	updated := payloadToProperty(req.PropertyPayload)
	updated.ID = existing.ID
	updated.Images = existing.Images
	updated.ImageKeys = existing.ImageKeys
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(updated); err != nil {
		return err
	}

	s.cacheRepo.Delete(propertiesCacheKey)
	s.publishEvent(publishers.ActionUpdate, updated.ID)
	return nil
}

// DeleteProperty elimina una propiedad y sus imágenes
// Primero pide el borrado de los assets; si falla, solo se loguea:
// la consistencia de la metadata tiene prioridad y los archivos
// huérfanos se limpian por fuera
func (s *propertyService) DeleteProperty(ctx context.Context, id uint) error {
	property, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if len(property.ImageKeys) > 0 {
		if err := s.assetRepo.DeleteFiles(ctx, property.ImageKeys); err != nil {
			log.Printf("Error deleting assets for property %d (continuing with row delete): %v", id, err)
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.cacheRepo.Delete(propertiesCacheKey)
	s.publishEvent(publishers.ActionDelete, id)
	return nil
}

// UploadImages sube los archivos al object store en orden
// Si alguno falla, borra los que ya se subieron y devuelve el error:
// una creación nunca puede quedar con assets pagados a medias
func (s *propertyService) UploadImages(ctx context.Context, files []dto.UploadFile) ([]dto.UploadedAsset, error) {
	assets := make([]dto.UploadedAsset, 0, len(files))

	for _, file := range files {
		asset, err := s.assetRepo.UploadFile(ctx, file)
		if err != nil {
			log.Printf("Error uploading %s, cleaning up %d already uploaded assets: %v", file.Name, len(assets), err)
			keys := make([]string, 0, len(assets))
			for _, a := range assets {
				keys = append(keys, a.Key)
			}
			s.CleanupAssets(ctx, keys)
			return nil, err
		}
		assets = append(assets, *asset)
	}

	return assets, nil
}

// CleanupAssets borra assets en el object store, best-effort
// Se usa como compensación: para cuando ya falló otra cosa,
// así que un error acá solo se loguea
func (s *propertyService) CleanupAssets(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	if err := s.assetRepo.DeleteFiles(ctx, keys); err != nil {
		log.Printf("Error cleaning up %d assets: %v", len(keys), err)
	}
}

// publishEvent publica el evento si hay publisher configurado
// Un error publicando no hace fallar la operación: el índice de
// búsqueda es eventual
func (s *propertyService) publishEvent(action string, propertyID uint) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishPropertyEvent(action, propertyID); err != nil {
		log.Printf("Error publishing property event: action=%s, id=%d, error=%v", action, propertyID, err)
	}
}

// payloadToProperty convierte un payload ya validado al modelo de dominio
// Asume que los punteros obligatorios no son nil (la validación corre antes)
func payloadToProperty(p dto.PropertyPayload) *domain.Property {
	property := &domain.Property{
		Operation:     domain.Operation(*p.Operation),
		Subtype:       domain.Subtype(*p.Subtype),
		Bedrooms:      *p.Bedrooms,
		Bathrooms:     *p.Bathrooms,
		Price:         *p.Price,
		Address:       *p.Address,
		Description:   *p.Description,
		Commission:    *p.Commission,
		AcceptsCredit: *p.AcceptsCredit,
		Area:          p.Area,
	}

	if p.Washing != nil {
		w := domain.Washing(*p.Washing)
		property.Washing = &w
	}
	if p.Parking != nil {
		pk := domain.Parking(*p.Parking)
		property.Parking = &pk
	}
	if p.Heating != nil {
		h := domain.Heating(*p.Heating)
		property.Heating = &h
	}
	if p.Coordinates != nil && p.Coordinates.Lat != nil && p.Coordinates.Lng != nil {
		property.Coordinates = &domain.Coordinates{
			Lat: *p.Coordinates.Lat,
			Lng: *p.Coordinates.Lng,
		}
	}

	return property
}
