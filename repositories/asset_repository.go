package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"properties-api/dto"
)

// AssetRepository define la interfaz contra el object store externo
// donde viven las imágenes de las propiedades
type AssetRepository interface {
	// UploadFile sube un archivo y devuelve su URL pública junto con la
	// clave opaca que después sirve para borrarlo
	UploadFile(ctx context.Context, file dto.UploadFile) (*dto.UploadedAsset, error)
	// DeleteFiles borra un lote de archivos por sus claves
	DeleteFiles(ctx context.Context, keys []string) error
}

// assetRepository implementa AssetRepository contra la API HTTP del store
type assetRepository struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAssetRepository crea una nueva instancia de AssetRepository
func NewAssetRepository(baseURL, apiKey string) AssetRepository {
	return &assetRepository{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// uploadResponse es la respuesta del store al subir un archivo
type uploadResponse struct {
	URL string `json:"url"`
}

// deleteFilesRequest es el body del borrado en lote
type deleteFilesRequest struct {
	Keys []string `json:"keys"`
}

// UploadFile sube un archivo con una clave generada localmente
// La clave es un UUID más la extensión original para que el store
// nunca pise dos archivos distintos
func (r *assetRepository) UploadFile(ctx context.Context, file dto.UploadFile) (*dto.UploadedAsset, error) {
	key := uuid.NewString() + strings.ToLower(filepath.Ext(file.Name))

	uploadURL := fmt.Sprintf("%s/files/%s", r.baseURL, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(file.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", file.ContentType)
	req.Header.Set("X-Api-Key", r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file %s: %w", file.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("object store returned status %d uploading %s: %s", resp.StatusCode, file.Name, string(body))
	}

	var uploadResp uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if uploadResp.URL == "" {
		return nil, fmt.Errorf("object store returned no URL for %s", file.Name)
	}

	return &dto.UploadedAsset{URL: uploadResp.URL, Key: key}, nil
}

// DeleteFiles borra un lote de archivos por sus claves
// El que llama decide si el error es fatal o solo se loguea
func (r *assetRepository) DeleteFiles(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	body, err := json.Marshal(deleteFilesRequest{Keys: keys})
	if err != nil {
		return fmt.Errorf("failed to marshal delete request: %w", err)
	}

	deleteURL := fmt.Sprintf("%s/files/delete", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deleteURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("object store returned status %d deleting files: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
