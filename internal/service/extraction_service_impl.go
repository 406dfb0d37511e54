package service

import (
	"context"
	"time"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/intelligence"
)

type extractionService struct {
	extractor intelligence.Extractor
	observer  UseCaseObserver
}

func NewExtractionService(extractor intelligence.Extractor, observers ...UseCaseObserver) ExtractionService {
	if extractor == nil {
		extractor = intelligence.NewStubExtractor()
	}
	return &extractionService{
		extractor: extractor,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Extract reads the document at path and returns drafts awaiting review.
// Nothing is added to the session.
func (s *extractionService) Extract(ctx context.Context, path string, progress intelligence.ProgressNotifier) (drafts []domain.CourseDraft, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() { observeUseCase(ctx, s.observer, "extract", startedAt, fields, err) }()

	doc, err := intelligence.DocumentFromPath(path)
	if err != nil {
		return nil, err
	}
	fields["media_type"] = doc.MediaType

	drafts, err = s.extractor.Extract(intelligence.WithProgress(ctx, progress), doc)
	if err != nil {
		return nil, err
	}
	fields["draft_count"] = len(drafts)
	return drafts, nil
}
