package service

import (
	"fmt"

	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/internal/upload"
	"bardabar-be-svc/pkg/logger"
)

// CreateNewsInput carries fields for a new news post
type CreateNewsInput struct {
	Title       string
	Content     string
	ImageBase64 string
}

// UpdateNewsInput carries a partial news update
type UpdateNewsInput struct {
	Title       *string
	Content     *string
	ImageBase64 string
}

// NewsService interface defines news business operations
type NewsService interface {
	List() ([]models.News, error)
	Create(input CreateNewsInput) (*models.News, error)
	Update(id uint, input UpdateNewsInput) (*models.News, error)
	Delete(id uint) error
}

// newsService implements NewsService interface
type newsService struct {
	newsRepo repository.NewsRepository
	uploader *upload.Uploader
	logger   *logger.Logger
}

// NewNewsService creates a new news service
func NewNewsService(newsRepo repository.NewsRepository, uploader *upload.Uploader, logger *logger.Logger) NewsService {
	return &newsService{
		newsRepo: newsRepo,
		uploader: uploader,
		logger:   logger,
	}
}

func (s *newsService) List() ([]models.News, error) {
	return s.newsRepo.List()
}

func (s *newsService) Create(input CreateNewsInput) (*models.News, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: news title is required", ErrValidation)
	}

	news := &models.News{
		Title:   input.Title,
		Content: input.Content,
	}

	if input.ImageBase64 != "" {
		url, err := s.uploader.SaveDataURL(input.ImageBase64, upload.ImageFileName("news", input.Title))
		if err != nil {
			s.logger.WithError(err).Error("Failed to store news image")
			return nil, err
		}
		news.ImageURL = url
	}

	if err := s.newsRepo.Create(news); err != nil {
		s.logger.WithError(err).Error("Failed to create news post")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"news_id": news.ID,
		"title":   news.Title,
	}).Info("News post created")

	return news, nil
}

func (s *newsService) Update(id uint, input UpdateNewsInput) (*models.News, error) {
	news, err := s.newsRepo.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: news title cannot be empty", ErrValidation)
		}
		news.Title = *input.Title
	}
	if input.Content != nil {
		news.Content = *input.Content
	}

	if input.ImageBase64 != "" {
		url, err := s.uploader.SaveDataURL(input.ImageBase64, upload.ImageFileName("news", news.Title))
		if err != nil {
			s.logger.WithError(err).WithField("news_id", id).Error("Failed to store news image")
			return nil, err
		}
		news.ImageURL = url
	}

	if err := s.newsRepo.Save(news); err != nil {
		s.logger.WithError(err).WithField("news_id", id).Error("Failed to update news post")
		return nil, err
	}
	return news, nil
}

func (s *newsService) Delete(id uint) error {
	news, err := s.newsRepo.Get(id)
	if err != nil {
		return err
	}
	if err := s.newsRepo.Delete(news); err != nil {
		s.logger.WithError(err).WithField("news_id", id).Error("Failed to delete news post")
		return err
	}
	return nil
}
