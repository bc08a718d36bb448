package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/entity"
	"github.com/mo-alkubaish/POSitiveflow-sub000/internal/domain/repository"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/apperror"
	"github.com/mo-alkubaish/POSitiveflow-sub000/pkg/pagination"
)

// FeedbackService handles customer feedback
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
	customerRepo repository.CustomerRepository
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, customerRepo repository.CustomerRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		customerRepo: customerRepo,
	}
}

// CreateFeedbackInput represents the create feedback input
type CreateFeedbackInput struct {
	CustomerID *uuid.UUID
	Rating     int
	Comment    *string
}

// CreateFeedback records customer feedback
func (s *FeedbackService) CreateFeedback(ctx context.Context, input *CreateFeedbackInput) (*entity.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperror.NewBadRequestError("Rating must be between 1 and 5")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	feedback := &entity.Feedback{
		CustomerID: input.CustomerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// ListFeedback lists feedback entries
func (s *FeedbackService) ListFeedback(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Feedback], error) {
	entries, total, err := s.feedbackRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// DeleteFeedback removes a feedback entry
func (s *FeedbackService) DeleteFeedback(ctx context.Context, id uuid.UUID) error {
	feedback, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if feedback == nil {
		return apperror.NewNotFoundError("Feedback")
	}
	return s.feedbackRepo.Delete(ctx, id)
}
