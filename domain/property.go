package domain

import "time"

// Operation define el tipo de operación de la propiedad
type Operation string

const (
	OperationSale     Operation = "SALE"     // Venta
	OperationRent     Operation = "RENT"     // Renta
	OperationTransfer Operation = "TRANSFER" // Traspaso
)

// Subtype define el subtipo de propiedad
type Subtype string

const (
	SubtypeHouse     Subtype = "HOUSE"     // Casa
	SubtypeApartment Subtype = "APARTMENT" // Departamento
	SubtypeLand      Subtype = "LAND"      // Terreno
)

// Washing define las opciones de lavado
// Ojo: "NONE" es un valor explícito ("no disponible"),
// distinto a que el campo no venga (no aplica)
type Washing string

const (
	WashingUnit      Washing = "UNIT"      // En unidad
	WashingBuilding  Washing = "BUILDING"  // En edificio
	WashingAvailable Washing = "AVAILABLE" // Disponible
	WashingNone      Washing = "NONE"      // No disponible
)

// Parking define las opciones de estacionamiento
type Parking string

const (
	ParkingCovered   Parking = "COVERED" // Cubierto
	ParkingPublic    Parking = "PUBLIC"  // En vía pública
	ParkingPrivate   Parking = "PRIVATE" // Privado
	ParkingAvailable Parking = "AVAILABLE"
	ParkingNone      Parking = "NONE"
)

// Heating define las opciones de calefacción
type Heating string

const (
	HeatingCentral   Heating = "CENTRAL"   // Central
	HeatingElectric  Heating = "ELECTRIC"  // Eléctrico
	HeatingGas       Heating = "GAS"       // Gas
	HeatingRadiators Heating = "RADIATORS" // Radiadores
	HeatingAvailable Heating = "AVAILABLE"
	HeatingNone      Heating = "NONE"
)

// Coordinates representa la geolocalización de la propiedad
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property representa una propiedad inmobiliaria en venta, renta o traspaso
// Los campos opcionales son punteros: nil significa que el dato no aplica
type Property struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Operation     Operation    `gorm:"type:varchar(20);not null" json:"operation"`
	Subtype       Subtype      `gorm:"type:varchar(20);not null" json:"subtype"`
	Bedrooms      int          `gorm:"not null" json:"bedrooms"`
	Bathrooms     float64      `gorm:"not null" json:"bathrooms"`
	Price         int64        `gorm:"not null" json:"price"` // Precio en MXN
	Address       string       `gorm:"type:varchar(255);not null" json:"address"`
	Description   string       `gorm:"type:text;not null" json:"description"`
	Commission    float64      `gorm:"not null" json:"commission"` // Porcentaje, precisión de 0.01
	AcceptsCredit bool         `gorm:"not null" json:"acceptsCredit"`
	Area          *int         `json:"area,omitempty"` // Metros cuadrados
	Washing       *Washing     `gorm:"type:varchar(20)" json:"washing,omitempty"`
	Parking       *Parking     `gorm:"type:varchar(20)" json:"parking,omitempty"`
	Heating       *Heating     `gorm:"type:varchar(20)" json:"heating,omitempty"`
	Images        []string     `gorm:"serializer:json" json:"images"`
	ImageKeys     []string     `gorm:"serializer:json" json:"imageKeys"` // Claves opacas del object store, paralelas a Images
	Coordinates   *Coordinates `gorm:"serializer:json" json:"coordinates,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName especifica el nombre de la tabla en MySQL
func (Property) TableName() string {
	return "properties"
}
