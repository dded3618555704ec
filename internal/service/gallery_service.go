package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/models"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/repository"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/storage"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

// Photo extensions accepted from the gallery and feedback upload forms.
var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

func allowedPhotoFile(filename string) bool {
	return allowedPhotoExts[strings.ToLower(path.Ext(filename))]
}

// GalleryService manages photo gallery categories and their images.
type GalleryService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Category(ctx context.Context, key string) (*models.Category, error)
	CreateCategory(ctx context.Context, key, title string) (*models.Category, error)
	DeleteCategory(ctx context.Context, key string) error
	AddImage(ctx context.Context, key, filename string, data io.Reader) (string, error)
	RemoveImage(ctx context.Context, key, imageID string) error
	OpenImage(ctx context.Context, imageID string) (io.ReadCloser, error)
}

type galleryService struct {
	repo   repository.CategoryRepository
	photos storage.PhotoStore
	log    *logger.Logger
}

// NewGalleryService creates a gallery service implementation.
func NewGalleryService(repo repository.CategoryRepository, photos storage.PhotoStore, log *logger.Logger) GalleryService {
	return &galleryService{repo: repo, photos: photos, log: log}
}

func (s *galleryService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx)
}

func (s *galleryService) Category(ctx context.Context, key string) (*models.Category, error) {
	category, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.ErrCategoryNotFound
	}
	return category, nil
}

func (s *galleryService) CreateCategory(ctx context.Context, key, title string) (*models.Category, error) {
	if key == "" || title == "" {
		return nil, fmt.Errorf("category key and title are required")
	}
	category := &models.Category{Key: key, Title: title, Images: []string{}}
	id, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = id
	return category, nil
}

// DeleteCategory removes a category and every image stored for it.
func (s *galleryService) DeleteCategory(ctx context.Context, key string) error {
	category, err := s.Category(ctx, key)
	if err != nil {
		return err
	}
	for _, imageID := range category.Images {
		if err := s.photos.Delete(imageID); err != nil {
			s.log.WithField("image_id", imageID).Error("failed to delete gallery image")
		}
	}
	return s.repo.Delete(ctx, category.ID)
}

func (s *galleryService) AddImage(ctx context.Context, key, filename string, data io.Reader) (string, error) {
	if !allowedPhotoFile(filename) {
		return "", errs.ErrInvalidFileType
	}
	category, err := s.Category(ctx, key)
	if err != nil {
		return "", err
	}

	// Keep the original extension so content type sniffing stays cheap.
	imageID := uuid.New().String() + path.Ext(filename)
	if err := s.photos.Save(imageID, data); err != nil {
		return "", fmt.Errorf("failed to store gallery image: %w", err)
	}
	if err := s.repo.AddImage(ctx, category.ID, imageID); err != nil {
		s.photos.Delete(imageID)
		return "", err
	}
	return imageID, nil
}

func (s *galleryService) RemoveImage(ctx context.Context, key, imageID string) error {
	category, err := s.Category(ctx, key)
	if err != nil {
		return err
	}
	if err := s.repo.RemoveImage(ctx, category.ID, imageID); err != nil {
		return err
	}
	if err := s.photos.Delete(imageID); err != nil {
		s.log.WithField("image_id", imageID).Error("failed to delete gallery image")
	}
	return nil
}

func (s *galleryService) OpenImage(ctx context.Context, imageID string) (io.ReadCloser, error) {
	return s.photos.Open(imageID)
}
