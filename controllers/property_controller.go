package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"properties-api/dto"
	"properties-api/repositories"
	"properties-api/services"
	"properties-api/validations"
)

// Límites de subida de imágenes (los mismos que usa el frontend)
const (
	maxUploadFiles    = 20
	maxUploadFileSize = 8 << 20 // 8MB por archivo
)

// Textos de respuesta del API
// Se mantienen los mismos mensajes genéricos de siempre: los detalles
// de un error interno nunca viajan al cliente
const (
	msgPropertyCreated = "Property created"
	msgPropertyUpdated = "Property updated"
	msgPropertyDeleted = "Property deleted"
	msgCreateError     = "An error occured creating the property"
	msgUpdateError     = "An error occured updating the property"
	msgDeleteError     = "An error occured deleting the property"
	msgNotFound        = "Property not found"
)

// PropertyController maneja los endpoints HTTP de propiedades
type PropertyController struct {
	service services.PropertyService
}

// NewPropertyController crea una nueva instancia del controlador
func NewPropertyController(service services.PropertyService) *PropertyController {
	return &PropertyController{service: service}
}

// GetAllProperties maneja GET /api/property
// Endpoint público: devuelve todas las propiedades, más nuevas primero
func (ctrl *PropertyController) GetAllProperties(c *gin.Context) {
	properties, err := ctrl.service.GetAllProperties(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "An error occured fetching the properties",
		})
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetPropertyByID maneja GET /api/property/:id
// Endpoint público: lo usa la ficha de la propiedad
func (ctrl *PropertyController) GetPropertyByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid property ID"})
		return
	}

	property, err := ctrl.service.GetPropertyByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "An error occured fetching the property",
		})
		return
	}

	c.JSON(http.StatusOK, property)
}

// CreateProperty maneja POST /api/property (solo admin)
// Flujo: parsear body -> validar -> insertar
// Las imágenes ya están en el object store cuando llega este request,
// así que cualquier falla a partir de acá tiene que borrarlas
func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
	// 1. Leer el JSON del body
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgCreateError})
		return
	}

	// 2. Validar el payload completo
	// Si la validación falla, los assets ya subidos quedarían huérfanos:
	// se borran acá mismo (igual que ante una falla de la base)
	if errs := validations.ValidateCreate(req); len(errs) > 0 {
		ctrl.service.CleanupAssets(c.Request.Context(), req.ImageKeys)
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Message: msgCreateError,
			Errors:  errs,
		})
		return
	}

	// 3. Insertar (el servicio compensa los assets si la base falla)
	if err := ctrl.service.CreateProperty(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgCreateError})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgPropertyCreated})
}

// UpdateProperty maneja PATCH /api/property (solo admin)
// Reemplaza los campos editables; las imágenes no se tocan
func (ctrl *PropertyController) UpdateProperty(c *gin.Context) {
	var req dto.EditPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgUpdateError})
		return
	}

	if errs := validations.ValidateEdit(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Message: msgUpdateError,
			Errors:  errs,
		})
		return
	}

	if err := ctrl.service.UpdateProperty(c.Request.Context(), req); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgUpdateError})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgPropertyUpdated})
}

// DeleteProperty maneja DELETE /api/property (solo admin)
// Primero se borran los assets (best-effort) y después la fila;
// borrar dos veces el mismo id da 404
func (ctrl *PropertyController) DeleteProperty(c *gin.Context) {
	var req dto.DeletePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgDeleteError})
		return
	}

	if err := ctrl.service.DeleteProperty(c.Request.Context(), *req.ID); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgDeleteError})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgPropertyDeleted})
}

// UploadImages maneja POST /api/uploads (solo admin)
// Recibe multipart con el campo "files" y devuelve [{url, key}]
// en el mismo orden en que llegaron los archivos
func (ctrl *PropertyController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid multipart form"})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "No files to upload"})
		return
	}
	if len(fileHeaders) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Too many files (max 20)"})
		return
	}

	files := make([]dto.UploadFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if fh.Size > maxUploadFileSize {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "File too large (max 8MB)"})
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Could not read uploaded file"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Could not read uploaded file"})
			return
		}

		files = append(files, dto.UploadFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	assets, err := ctrl.service.UploadImages(c.Request.Context(), files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "An error occured uploading the files",
		})
		return
	}

	c.JSON(http.StatusOK, assets)
}
