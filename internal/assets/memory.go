package assets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"screencraft-backend/internal/dataurl"
	"screencraft-backend/internal/models"
)

// MemoryStore keeps asset records in a process-local map. This is the default
// backend; records live only as long as the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.AssetRecord
	order   []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.AssetRecord)}
}

func (s *MemoryStore) Upload(_ context.Context, uploads []models.AssetUpload) ([]models.AssetReference, error) {
	refs := make([]models.AssetReference, 0, len(uploads))

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, up := range uploads {
		id := uuid.NewString()
		record := models.AssetRecord{
			ID:       id,
			DataURL:  up.DataURL,
			FileName: up.FileName,
			FileType: up.FileType,
			Category: up.Category,
		}
		if record.FileName == "" {
			record.FileName = "asset-" + id
		}
		if record.FileType == "" {
			record.FileType = "application/octet-stream"
		}
		s.records[id] = record
		s.order = append(s.order, id)

		refs = append(refs, models.AssetReference{
			ID:       id,
			URL:      URLFor(id),
			FileName: up.FileName,
			Category: up.Category,
		})
		log.Printf("[ASSET] Stored asset %s: %s", id, up.FileName)
	}
	return refs, nil
}

func (s *MemoryStore) Resolve(_ context.Context, id string) (Content, error) {
	s.mu.RLock()
	record, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return Content{}, ErrNotFound
	}

	bytes, mime, err := dataurl.DecodeBinary(record.DataURL, record.FileType)
	if err != nil {
		if errors.Is(err, dataurl.ErrNotDataURL) {
			return Content{}, ErrInvalidDataURL
		}
		return Content{}, fmt.Errorf("decode asset %s: %w", id, err)
	}
	return Content{Bytes: bytes, MimeType: mime, FileName: record.FileName}, nil
}

func (s *MemoryStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.AssetReference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := make([]models.AssetReference, 0, len(s.order))
	for _, id := range s.order {
		record := s.records[id]
		refs = append(refs, models.AssetReference{
			ID:       id,
			URL:      URLFor(id),
			FileName: record.FileName,
			Category: record.Category,
		})
	}
	return refs, nil
}
