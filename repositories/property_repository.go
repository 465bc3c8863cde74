package repositories

import (
	"errors"

	"gorm.io/gorm"

	"properties-api/domain"
)

// ErrPropertyNotFound se devuelve cuando el id no existe en la base
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository define la interfaz del repositorio de propiedades
// Es el "contrato" con la base de datos: el servicio no conoce GORM
type PropertyRepository interface {
	Create(property *domain.Property) error
	GetByID(id uint) (*domain.Property, error)
	GetAll() ([]domain.Property, error)
	Update(property *domain.Property) error
	Delete(id uint) error
}

// propertyRepository es la implementación real con GORM
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository crea una nueva instancia del repositorio
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create inserta una nueva propiedad; la base asigna el ID
func (r *propertyRepository) Create(property *domain.Property) error {
	return r.db.Create(property).Error
}

// GetByID busca una propiedad por su ID
func (r *propertyRepository) GetByID(id uint) (*domain.Property, error) {
	var property domain.Property
	err := r.db.First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

// GetAll obtiene todas las propiedades ordenadas por ID descendente
// (las más nuevas primero, que es como las muestra la tabla)
func (r *propertyRepository) GetAll() ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.Order("id DESC").Find(&properties).Error
	return properties, err
}

// Update reemplaza los campos editables de una propiedad existente
func (r *propertyRepository) Update(property *domain.Property) error {
	return r.db.Save(property).Error
}

// Delete elimina la fila de la propiedad
func (r *propertyRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}
