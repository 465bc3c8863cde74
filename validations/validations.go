package validations

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"properties-api/dto"
)

// FieldError describe una violación sobre un campo concreto
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors es el resultado de una validación fallida
// Acumula TODAS las violaciones, no solo la primera
type Errors []FieldError

// Error implementa la interfaz error
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

// Has indica si hay una violación sobre el campo dado (útil en tests)
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Conjuntos de valores permitidos para cada enum
var (
	operationValues = []string{"SALE", "RENT", "TRANSFER"}
	subtypeValues   = []string{"HOUSE", "APARTMENT", "LAND"}
	washingValues   = []string{"UNIT", "BUILDING", "AVAILABLE", "NONE"}
	parkingValues   = []string{"COVERED", "PUBLIC", "PRIVATE", "AVAILABLE", "NONE"}
	heatingValues   = []string{"CENTRAL", "ELECTRIC", "GAS", "RADIATORS", "AVAILABLE", "NONE"}
)

// La comisión se guarda con precisión de centésimas
var commissionStep = decimal.New(1, -2) // 0.01

// ValidateCreate valida el payload completo de creación
// Además de los campos comunes exige imágenes (URLs + claves en paralelo)
// y coordenadas
func ValidateCreate(req dto.CreatePropertyRequest) Errors {
	errs := validatePayload(req.PropertyPayload)

	if len(req.Images) == 0 {
		errs = append(errs, FieldError{"images", "at least one image is required"})
	}
	for i, img := range req.Images {
		if !isHTTPURL(img) {
			errs = append(errs, FieldError{fmt.Sprintf("images[%d]", i), "must be a valid http(s) URL"})
		}
	}
	if len(req.ImageKeys) == 0 {
		errs = append(errs, FieldError{"imageKeys", "at least one image key is required"})
	}
	for i, key := range req.ImageKeys {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, FieldError{fmt.Sprintf("imageKeys[%d]", i), "must not be empty"})
		}
	}
	// Imagen y clave viajan siempre de a pares, en el mismo orden
	if len(req.Images) != len(req.ImageKeys) {
		errs = append(errs, FieldError{"imageKeys", "must have the same length as images"})
	}

	return errs
}

// ValidateEdit valida el payload de edición
// Exige el id de la propiedad y NO acepta campos de imágenes
// (los assets no se pueden cambiar después de la creación)
func ValidateEdit(req dto.EditPropertyRequest) Errors {
	errs := validatePayload(req.PropertyPayload)

	if req.ID == nil {
		errs = append(errs, FieldError{"id", "is required"})
	} else if *req.ID == 0 {
		errs = append(errs, FieldError{"id", "must be a positive integer"})
	}

	return errs
}

// validatePayload valida los campos comunes a creación y edición
func validatePayload(p dto.PropertyPayload) Errors {
	var errs Errors

	// Enums obligatorios
	if p.Operation == nil {
		errs = append(errs, FieldError{"operation", "is required"})
	} else if !inSet(*p.Operation, operationValues) {
		errs = append(errs, FieldError{"operation", enumMessage(operationValues)})
	}
	if p.Subtype == nil {
		errs = append(errs, FieldError{"subtype", "is required"})
	} else if !inSet(*p.Subtype, subtypeValues) {
		errs = append(errs, FieldError{"subtype", enumMessage(subtypeValues)})
	}

	// Numéricos obligatorios
	if p.Bedrooms == nil {
		errs = append(errs, FieldError{"bedrooms", "is required"})
	} else if *p.Bedrooms < 0 {
		errs = append(errs, FieldError{"bedrooms", "must be a non-negative integer"})
	}
	if p.Bathrooms == nil {
		errs = append(errs, FieldError{"bathrooms", "is required"})
	} else if *p.Bathrooms < 0 {
		errs = append(errs, FieldError{"bathrooms", "must be non-negative"})
	}
	if p.Price == nil {
		errs = append(errs, FieldError{"price", "is required"})
	} else if *p.Price <= 0 {
		errs = append(errs, FieldError{"price", "must be a positive integer"})
	}

	// Strings obligatorios
	if p.Address == nil || *p.Address == "" {
		errs = append(errs, FieldError{"address", "is required"})
	}
	if p.Description == nil || *p.Description == "" {
		errs = append(errs, FieldError{"description", "is required"})
	}

	// Comisión: no negativa y múltiplo de 0.01
	if p.Commission == nil {
		errs = append(errs, FieldError{"commission", "is required"})
	} else {
		if *p.Commission < 0 {
			errs = append(errs, FieldError{"commission", "must be non-negative"})
		}
		d := decimal.NewFromFloat(*p.Commission)
		if !d.Mod(commissionStep).IsZero() {
			errs = append(errs, FieldError{"commission", "must be a multiple of 0.01"})
		}
	}

	if p.AcceptsCredit == nil {
		errs = append(errs, FieldError{"acceptsCredit", "is required"})
	}

	// Opcionales: solo se validan si vienen
	if p.Area != nil && *p.Area <= 0 {
		errs = append(errs, FieldError{"area", "must be a positive integer"})
	}
	if p.Washing != nil && !inSet(*p.Washing, washingValues) {
		errs = append(errs, FieldError{"washing", enumMessage(washingValues)})
	}
	if p.Parking != nil && !inSet(*p.Parking, parkingValues) {
		errs = append(errs, FieldError{"parking", enumMessage(parkingValues)})
	}
	if p.Heating != nil && !inSet(*p.Heating, heatingValues) {
		errs = append(errs, FieldError{"heating", enumMessage(heatingValues)})
	}

	// Coordenadas: obligatorias tanto en creación como en edición
	if p.Coordinates == nil {
		errs = append(errs, FieldError{"coordinates", "is required"})
	} else {
		if p.Coordinates.Lat == nil {
			errs = append(errs, FieldError{"coordinates.lat", "is required"})
		}
		if p.Coordinates.Lng == nil {
			errs = append(errs, FieldError{"coordinates.lng", "is required"})
		}
	}

	return errs
}

func inSet(value string, set []string) bool {
	for _, v := range set {
		if value == v {
			return true
		}
	}
	return false
}

func enumMessage(set []string) string {
	return "must be one of: " + strings.Join(set, ", ")
}

func isHTTPURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
