package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-geo/internal/cnpj"
	"github.com/nexconsult/cnpj-geo/internal/models"
	"github.com/nexconsult/cnpj-geo/internal/worker"
)

var (
	ErrEmptyBatch    = errors.New("batch must contain at least one cnpj")
	ErrBatchTooLarge = errors.New("batch exceeds the maximum number of items")
)

// CNPJService validates CNPJs and caches the analysis of well-formed ones
type CNPJService struct {
	cache     CacheServiceInterface
	extractor *ExtractorService
	pool      *worker.Pool
	maxBatch  int
	logger    *logrus.Logger
}

// NewCNPJService creates a new CNPJ service. Attach a pool with SetPool
// before calling Batch.
func NewCNPJService(cache CacheServiceInterface, extractor *ExtractorService, maxBatch int, logger *logrus.Logger) *CNPJService {
	return &CNPJService{
		cache:     cache,
		extractor: extractor,
		maxBatch:  maxBatch,
		logger:    logger,
	}
}

// SetPool attaches the worker pool used by Batch
func (s *CNPJService) SetPool(pool *worker.Pool) {
	s.pool = pool
}

// Analyze validates one CNPJ. Only 14-digit inputs are cached, keyed by
// their digits; Original always echoes the caller's input.
func (s *CNPJService) Analyze(ctx context.Context, input string) (cnpj.Info, bool, error) {
	cleaned := cnpj.Clean(input)
	cacheable := s.cache != nil && len(cleaned) == cnpj.Length

	if cacheable {
		if raw, err := s.cache.Get(ctx, cleaned); err == nil {
			var info cnpj.Info
			if err := json.Unmarshal([]byte(raw), &info); err == nil {
				info.Original = input
				return info, true, nil
			}
			s.logger.WithField("cnpj", cleaned).Warn("Discarding undecodable cache entry")
		}
	}

	if err := ctx.Err(); err != nil {
		return cnpj.Info{}, false, err
	}

	info := cnpj.Analyze(input)

	if cacheable {
		payload, err := json.Marshal(info)
		if err != nil {
			return info, false, fmt.Errorf("encode analysis: %w", err)
		}
		if err := s.cache.Set(ctx, cleaned, string(payload)); err != nil {
			s.logger.WithFields(logrus.Fields{
				"cnpj":  cleaned,
				"error": err.Error(),
			}).Warn("Failed to cache analysis")
		}
	}

	return info, false, nil
}

// analyzeForPool adapts Analyze to worker.AnalyzeFunc
func (s *CNPJService) analyzeForPool(ctx context.Context, input string) (cnpj.Info, error) {
	info, _, err := s.Analyze(ctx, input)
	return info, err
}

// Batch validates inputs on the worker pool, preserving order
func (s *CNPJService) Batch(ctx context.Context, inputs []string) (*models.BatchResponse, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.maxBatch > 0 && len(inputs) > s.maxBatch {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrBatchTooLarge, len(inputs), s.maxBatch)
	}
	if s.pool == nil {
		return nil, worker.ErrPoolNotStarted
	}

	start := time.Now()
	results, err := s.pool.ProcessBatch(ctx, inputs)
	if err != nil {
		return nil, err
	}

	resp := &models.BatchResponse{
		Results: make([]models.BatchResult, len(results)),
	}
	for i, res := range results {
		item := models.BatchResult{Input: res.Input}
		switch {
		case res.Err != nil:
			item.Error = res.Err.Error()
			resp.Stats.Errors++
		case res.Info.Valid:
			info := res.Info
			item.Info = &info
			resp.Stats.Valid++
		default:
			info := res.Info
			item.Info = &info
			resp.Stats.Invalid++
		}
		resp.Results[i] = item
	}
	resp.Stats.Total = len(results)
	resp.Stats.Duration = time.Since(start)

	s.logger.WithFields(logrus.Fields{
		"total":    resp.Stats.Total,
		"valid":    resp.Stats.Valid,
		"invalid":  resp.Stats.Invalid,
		"errors":   resp.Stats.Errors,
		"duration": resp.Stats.Duration,
	}).Info("Batch validation completed")

	return resp, nil
}

// Extract finds valid CNPJs in body, parsing it as HTML when it looks like HTML
func (s *CNPJService) Extract(ctx context.Context, body []byte, contentType string) ([]cnpj.Info, error) {
	var found []string
	if IsHTML(contentType, body) {
		var err error
		found, err = s.extractor.ExtractFromHTML(body)
		if err != nil {
			return nil, err
		}
	} else {
		found = s.extractor.ExtractFromText(body)
	}

	infos := make([]cnpj.Info, 0, len(found))
	for _, c := range found {
		info, _, err := s.Analyze(ctx, c)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Generate completes a 12-digit base with its check digits
func (s *CNPJService) Generate(base string) (*models.GenerateResponse, error) {
	full, err := cnpj.Complete(base)
	if err != nil {
		return nil, err
	}
	return &models.GenerateResponse{
		Base:        full[:cnpj.BaseLength],
		CheckDigits: full[cnpj.BaseLength:],
		CNPJ:        full,
		Formatted:   cnpj.Format(full),
	}, nil
}

// Health returns service health status
func (s *CNPJService) Health() map[string]interface{} {
	status := "healthy"
	if s.pool == nil {
		status = "degraded"
	}
	return map[string]interface{}{
		"status":    status,
		"max_batch": s.maxBatch,
	}
}
