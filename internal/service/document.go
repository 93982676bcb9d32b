package service

import (
	"context"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/repository"
)

type documentService struct {
	docRepo repository.DocumentRepository
}

func NewDocumentService(docRepo repository.DocumentRepository) DocumentService {
	return &documentService{docRepo: docRepo}
}

func (s *documentService) ListOrderDocuments(ctx context.Context, orderID int32) ([]domain.Document, error) {
	return s.docRepo.ListByOrder(ctx, orderID)
}

// DeleteDocument removes the record only; the stored object stays reachable
// through its URL for anyone who kept it.
func (s *documentService) DeleteDocument(ctx context.Context, id int32) error {
	if _, err := s.docRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.docRepo.Delete(ctx, id)
}
