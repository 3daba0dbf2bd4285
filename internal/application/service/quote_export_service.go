package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/config"
	"github.com/konnekit/orcamentos-api/internal/domain/repository"
	"github.com/konnekit/orcamentos-api/pkg/apperror"
)

// QuoteExportService turns persisted quotes into downloadable documents
type QuoteExportService struct {
	quoteRepo repository.QuoteRepository
	company   *config.CompanyConfig
	quoteCfg  *config.QuoteConfig
	loadImage ImageLoader
	now       func() time.Time
}

// NewQuoteExportService creates a new quote export service
func NewQuoteExportService(quoteRepo repository.QuoteRepository, company *config.CompanyConfig, quoteCfg *config.QuoteConfig, loadImage ImageLoader) *QuoteExportService {
	if loadImage == nil {
		loadImage = DefaultImageLoader(nil)
	}
	return &QuoteExportService{
		quoteRepo: quoteRepo,
		company:   company,
		quoteCfg:  quoteCfg,
		loadImage: loadImage,
		now:       time.Now,
	}
}

// ExportData builds the document content model for a quote.
func (s *QuoteExportService) ExportData(ctx context.Context, id uuid.UUID) (*QuoteExportData, error) {
	quote, err := s.quoteRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}

	return BuildQuoteExportData(quote, s.company, s.quoteCfg, s.now(), s.loadImage), nil
}

// ExportPDF renders a quote as PDF bytes along with its file name.
func (s *QuoteExportService) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	data, err := s.ExportData(ctx, id)
	if err != nil {
		return nil, "", err
	}

	pdf, err := GenerateQuotePDF(data)
	if err != nil {
		return nil, "", apperror.NewInternalError(err)
	}

	return pdf, data.FileName, nil
}
