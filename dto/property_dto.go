package dto

// CoordinatesPayload es el par lat/lng tal como viene en el JSON
type CoordinatesPayload struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// PropertyPayload contiene los campos editables de una propiedad
// Todos los campos obligatorios son punteros para poder distinguir
// "campo ausente" de "valor cero" al validar
type PropertyPayload struct {
	Operation     *string             `json:"operation"`
	Subtype       *string             `json:"subtype"`
	Bedrooms      *int                `json:"bedrooms"`
	Bathrooms     *float64            `json:"bathrooms"`
	Price         *int64              `json:"price"`
	Address       *string             `json:"address"`
	Description   *string             `json:"description"`
	Commission    *float64            `json:"commission"`
	AcceptsCredit *bool               `json:"acceptsCredit"`
	Area          *int                `json:"area,omitempty"`
	Washing       *string             `json:"washing,omitempty"`
	Parking       *string             `json:"parking,omitempty"`
	Heating       *string             `json:"heating,omitempty"`
	Coordinates   *CoordinatesPayload `json:"coordinates"`
}

// CreatePropertyRequest representa el request para crear una propiedad
// Las imágenes ya fueron subidas al object store: acá llegan las URLs
// junto con las claves de borrado, en el mismo orden
type CreatePropertyRequest struct {
	PropertyPayload
	Images    []string `json:"images"`
	ImageKeys []string `json:"imageKeys"`
}

// EditPropertyRequest representa el request para editar una propiedad
// Las imágenes no se pueden cambiar después de creada la propiedad,
// por eso el payload de edición no las incluye
type EditPropertyRequest struct {
	PropertyPayload
	ID *uint `json:"id"`
}

// DeletePropertyRequest representa el request para eliminar una propiedad
type DeletePropertyRequest struct {
	ID *uint `json:"id"`
}

// UploadedAsset es el resultado de subir un archivo al object store
type UploadedAsset struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// UploadFile es un archivo recibido por multipart listo para subir
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// LoginRequest representa el request de login del administrador
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse devuelve el token JWT después de un login exitoso
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse es la respuesta estándar de los endpoints de escritura
// Errors solo se llena cuando la validación falla
type MessageResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}
