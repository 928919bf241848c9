package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lkarlova/ourkisses-backend/internal/models"
	"github.com/lkarlova/ourkisses-backend/internal/repository"
	"github.com/lkarlova/ourkisses-backend/pkg/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const MaxPhotoSize = 5 * 1024 * 1024 // 5 MiB

type MemoryService struct {
	memoryRepo  repository.MemoryRepository
	blobStorage storage.BlobStorage
	logger      *zap.Logger
}

func NewMemoryService(memoryRepo repository.MemoryRepository, blobStorage storage.BlobStorage, logger *zap.Logger) *MemoryService {
	return &MemoryService{
		memoryRepo:  memoryRepo,
		blobStorage: blobStorage,
		logger:      logger,
	}
}

func (s *MemoryService) GetUserMemories(userID uint) ([]models.Memory, error) {
	return s.memoryRepo.GetByUserID(userID)
}

// CreateMemory validates before staging the photo blob, so a rejected
// request never leaves a file behind; an insert failure after staging
// deletes the staged blob.
func (s *MemoryService) CreateMemory(userID uint, text, date string, photo *multipart.FileHeader) (*models.Memory, error) {
	text = strings.TrimSpace(text)
	date = strings.TrimSpace(date)
	if text == "" || date == "" {
		return nil, ErrTextDateRequired
	}

	var photoPath *string
	if photo != nil {
		path, err := s.stagePhoto(photo)
		if err != nil {
			return nil, err
		}
		photoPath = &path
	}

	memory := &models.Memory{
		UserID: userID,
		Text:   text,
		Date:   date,
		Photo:  photoPath,
	}

	if err := s.memoryRepo.Create(memory); err != nil {
		if photoPath != nil {
			s.discardBlob(*photoPath)
		}
		return nil, err
	}

	return memory, nil
}

// UpdateMemory replaces text/date and applies the photo policy: a new
// upload replaces (and deletes) the previous blob, deletePhoto clears
// it, otherwise the existing reference is kept.
func (s *MemoryService) UpdateMemory(userID, memoryID uint, text, date string, photo *multipart.FileHeader, deletePhoto bool) (*models.Memory, error) {
	text = strings.TrimSpace(text)
	date = strings.TrimSpace(date)
	if text == "" || date == "" {
		return nil, ErrTextDateRequired
	}

	memory, err := s.memoryRepo.GetByIDAndUserID(memoryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoryNotFound
		}
		return nil, err
	}

	var staged *string
	if photo != nil {
		path, err := s.stagePhoto(photo)
		if err != nil {
			return nil, err
		}
		staged = &path

		if memory.Photo != nil {
			s.discardBlob(*memory.Photo)
		}
		memory.Photo = staged
	} else if deletePhoto && memory.Photo != nil {
		s.discardBlob(*memory.Photo)
		memory.Photo = nil
	}

	memory.Text = text
	memory.Date = date

	if err := s.memoryRepo.Update(memory); err != nil {
		if staged != nil {
			s.discardBlob(*staged)
		}
		return nil, err
	}

	return memory, nil
}

func (s *MemoryService) DeleteMemory(userID, memoryID uint) error {
	memory, err := s.memoryRepo.GetByIDAndUserID(memoryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemoryNotFound
		}
		return err
	}

	if memory.Photo != nil {
		s.discardBlob(*memory.Photo)
	}

	rows, err := s.memoryRepo.Delete(memoryID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMemoryNotFound
	}
	return nil
}

// stagePhoto validates the upload and writes it to blob storage,
// returning the public path.
func (s *MemoryService) stagePhoto(photo *multipart.FileHeader) (string, error) {
	if !isValidImageType(photo.Header.Get("Content-Type")) {
		return "", ErrInvalidFileType
	}
	if photo.Size > MaxPhotoSize {
		return "", ErrFileTooLarge
	}

	src, err := photo.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	filename := buildPhotoFilename(photo.Filename)
	return s.blobStorage.Save(filename, src)
}

// discardBlob is best-effort cleanup; a failed delete is logged, never
// surfaced.
func (s *MemoryService) discardBlob(path string) {
	if err := s.blobStorage.Delete(path); err != nil {
		s.logger.Error("failed to delete photo blob",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

// buildPhotoFilename keeps the original extension and makes the name
// unique per upload.
func buildPhotoFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("memory-%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

func isValidImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
