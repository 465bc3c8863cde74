package validations

import (
	"testing"

	"properties-api/dto"
)

func ptr[T any](v T) *T {
	return &v
}

// validPayload arma un payload que pasa todas las validaciones
func validPayload() dto.PropertyPayload {
	return dto.PropertyPayload{
		Operation:     ptr("SALE"),
		Subtype:       ptr("HOUSE"),
		Bedrooms:      ptr(3),
		Bathrooms:     ptr(2.5),
		Price:         ptr(int64(1500000)),
		Address:       ptr("Av. Siempre Viva 742, Col. Centro"),
		Description:   ptr("Casa amplia con jardín"),
		Commission:    ptr(2.5),
		AcceptsCredit: ptr(true),
		Area:          ptr(120),
		Washing:       ptr("UNIT"),
		Parking:       ptr("COVERED"),
		Heating:       ptr("NONE"),
		Coordinates: &dto.CoordinatesPayload{
			Lat: ptr(19.4326),
			Lng: ptr(-99.1332),
		},
	}
}

func validCreateRequest() dto.CreatePropertyRequest {
	return dto.CreatePropertyRequest{
		PropertyPayload: validPayload(),
		Images:          []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		ImageKeys:       []string{"key-a", "key-b"},
	}
}

// Test: un payload válido de creación pasa sin errores
func TestValidateCreate_Valid(t *testing.T) {
	errs := ValidateCreate(validCreateRequest())
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

// Test: los campos opcionales pueden faltar sin generar error
func TestValidateCreate_OptionalFieldsAbsent(t *testing.T) {
	req := validCreateRequest()
	req.Area = nil
	req.Washing = nil
	req.Parking = nil
	req.Heating = nil

	errs := ValidateCreate(req)
	if len(errs) != 0 {
		t.Errorf("Expected no errors with absent optional fields, got %v", errs)
	}
}

// Test: cada violación se reporta nombrando el campo correcto
func TestValidateCreate_InvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *dto.CreatePropertyRequest)
		field  string
	}{
		{
			name:   "bedrooms negativo",
			mutate: func(r *dto.CreatePropertyRequest) { r.Bedrooms = ptr(-1) },
			field:  "bedrooms",
		},
		{
			name:   "bedrooms ausente",
			mutate: func(r *dto.CreatePropertyRequest) { r.Bedrooms = nil },
			field:  "bedrooms",
		},
		{
			name:   "bathrooms negativo",
			mutate: func(r *dto.CreatePropertyRequest) { r.Bathrooms = ptr(-0.5) },
			field:  "bathrooms",
		},
		{
			name:   "commission con más de dos decimales",
			mutate: func(r *dto.CreatePropertyRequest) { r.Commission = ptr(1.005) },
			field:  "commission",
		},
		{
			name:   "commission negativa",
			mutate: func(r *dto.CreatePropertyRequest) { r.Commission = ptr(-1.0) },
			field:  "commission",
		},
		{
			name:   "operation fuera del enum",
			mutate: func(r *dto.CreatePropertyRequest) { r.Operation = ptr("LEASE") },
			field:  "operation",
		},
		{
			name:   "subtype fuera del enum",
			mutate: func(r *dto.CreatePropertyRequest) { r.Subtype = ptr("CASTLE") },
			field:  "subtype",
		},
		{
			name:   "price cero",
			mutate: func(r *dto.CreatePropertyRequest) { r.Price = ptr(int64(0)) },
			field:  "price",
		},
		{
			name:   "price negativo",
			mutate: func(r *dto.CreatePropertyRequest) { r.Price = ptr(int64(-100)) },
			field:  "price",
		},
		{
			name:   "address vacío",
			mutate: func(r *dto.CreatePropertyRequest) { r.Address = ptr("") },
			field:  "address",
		},
		{
			name:   "description ausente",
			mutate: func(r *dto.CreatePropertyRequest) { r.Description = nil },
			field:  "description",
		},
		{
			name:   "acceptsCredit ausente",
			mutate: func(r *dto.CreatePropertyRequest) { r.AcceptsCredit = nil },
			field:  "acceptsCredit",
		},
		{
			name:   "area cero",
			mutate: func(r *dto.CreatePropertyRequest) { r.Area = ptr(0) },
			field:  "area",
		},
		{
			name:   "washing fuera del enum",
			mutate: func(r *dto.CreatePropertyRequest) { r.Washing = ptr("LAUNDROMAT") },
			field:  "washing",
		},
		{
			name:   "parking fuera del enum",
			mutate: func(r *dto.CreatePropertyRequest) { r.Parking = ptr("VALET") },
			field:  "parking",
		},
		{
			name:   "heating fuera del enum",
			mutate: func(r *dto.CreatePropertyRequest) { r.Heating = ptr("FIREPLACE") },
			field:  "heating",
		},
		{
			name:   "coordinates ausentes",
			mutate: func(r *dto.CreatePropertyRequest) { r.Coordinates = nil },
			field:  "coordinates",
		},
		{
			name: "coordinates sin lng",
			mutate: func(r *dto.CreatePropertyRequest) {
				r.Coordinates = &dto.CoordinatesPayload{Lat: ptr(19.4)}
			},
			field: "coordinates.lng",
		},
		{
			name:   "images vacías",
			mutate: func(r *dto.CreatePropertyRequest) { r.Images = nil },
			field:  "images",
		},
		{
			name:   "image con URL inválida",
			mutate: func(r *dto.CreatePropertyRequest) { r.Images[0] = "no-es-una-url" },
			field:  "images[0]",
		},
		{
			name:   "imageKeys vacías",
			mutate: func(r *dto.CreatePropertyRequest) { r.ImageKeys = nil },
			field:  "imageKeys",
		},
		{
			name:   "imageKeys con distinta longitud que images",
			mutate: func(r *dto.CreatePropertyRequest) { r.ImageKeys = []string{"key-a"} },
			field:  "imageKeys",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			errs := ValidateCreate(req)
			if len(errs) == 0 {
				t.Fatal("Expected validation errors, got none")
			}
			if !errs.Has(tt.field) {
				t.Errorf("Expected an error on field %q, got %v", tt.field, errs)
			}
		})
	}
}

// Test: la validación acumula TODAS las violaciones, no solo la primera
func TestValidateCreate_ReportsEveryViolation(t *testing.T) {
	req := validCreateRequest()
	req.Bedrooms = ptr(-1)
	req.Price = ptr(int64(0))
	req.Operation = ptr("LEASE")

	errs := ValidateCreate(req)
	for _, field := range []string{"bedrooms", "price", "operation"} {
		if !errs.Has(field) {
			t.Errorf("Expected an error on field %q, got %v", field, errs)
		}
	}
}

// Test: un payload válido de edición pasa sin errores
func TestValidateEdit_Valid(t *testing.T) {
	req := dto.EditPropertyRequest{
		PropertyPayload: validPayload(),
		ID:              ptr(uint(7)),
	}
	errs := ValidateEdit(req)
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

// Test: el id es obligatorio al editar
func TestValidateEdit_MissingID(t *testing.T) {
	req := dto.EditPropertyRequest{PropertyPayload: validPayload()}
	errs := ValidateEdit(req)
	if !errs.Has("id") {
		t.Errorf("Expected an error on field \"id\", got %v", errs)
	}
}

// Test: id cero no es un id válido
func TestValidateEdit_ZeroID(t *testing.T) {
	req := dto.EditPropertyRequest{
		PropertyPayload: validPayload(),
		ID:              ptr(uint(0)),
	}
	errs := ValidateEdit(req)
	if !errs.Has("id") {
		t.Errorf("Expected an error on field \"id\", got %v", errs)
	}
}

// Test: comisiones válidas con dos decimales exactos
func TestValidateCreate_CommissionPrecision(t *testing.T) {
	for _, value := range []float64{0, 0.01, 2.5, 3.75, 100} {
		req := validCreateRequest()
		req.Commission = ptr(value)
		if errs := ValidateCreate(req); errs.Has("commission") {
			t.Errorf("Commission %v should be valid, got %v", value, errs)
		}
	}
}
