package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-geo/internal/api/middleware"
	"github.com/nexconsult/cnpj-geo/internal/cnpj"
	"github.com/nexconsult/cnpj-geo/internal/models"
	"github.com/nexconsult/cnpj-geo/internal/services"
)

// maxExtractBody caps documents accepted by Extract
const maxExtractBody = 5 << 20

// CNPJHandler handles CNPJ-related requests
type CNPJHandler struct {
	cnpjService services.CNPJServiceInterface
	logger      *logrus.Logger
}

// NewCNPJHandler creates a new CNPJ handler
func NewCNPJHandler(cnpjService services.CNPJServiceInterface, logger *logrus.Logger) *CNPJHandler {
	return &CNPJHandler{
		cnpjService: cnpjService,
		logger:      logger,
	}
}

// GetCNPJ analyzes a single CNPJ
// @Summary Analyze a CNPJ
// @Description Validate a CNPJ and describe its parts. Invalid numbers are reported with valid=false and a reason.
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ, formatted or digits only" example(11222333000181)
// @Success 200 {object} models.StandardResponse{data=cnpj.Info}
// @Failure 429 {object} models.StandardResponse
// @Failure 500 {object} models.StandardResponse
// @Router /cnpj/{cnpj} [get]
func (h *CNPJHandler) GetCNPJ(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString(middleware.RequestIDKey)
	input := c.Param("cnpj")

	info, hit, err := h.cnpjService.Analyze(c.Request.Context(), input)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"cnpj":       input,
			"error":      err.Error(),
		}).Error("Failed to analyze CNPJ")
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalError, "Failed to analyze CNPJ", nil, start)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"cnpj":       info.Cleaned,
		"valid":      info.Valid,
		"cache":      hit,
	}).Debug("CNPJ analyzed")

	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}

	message := "CNPJ is valid"
	if !info.Valid {
		message = "CNPJ is invalid"
	}
	respond(c, http.StatusOK, models.NewSuccessResponse(message, info), start)
}

// Validate validates a CNPJ sent in the request body
// @Summary Validate a CNPJ
// @Description Returns 200 when the CNPJ is valid and 422 with the rejection reason otherwise
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.ValidateRequest true "CNPJ to validate"
// @Success 200 {object} models.StandardResponse{data=cnpj.Info}
// @Failure 400 {object} models.StandardResponse
// @Failure 422 {object} models.StandardResponse
// @Router /cnpj/validate [post]
func (h *CNPJHandler) Validate(c *gin.Context) {
	start := time.Now()

	var req models.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, err.Error(), nil, start)
		return
	}

	info, _, err := h.cnpjService.Analyze(c.Request.Context(), req.CNPJ)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"error":      err.Error(),
		}).Error("Failed to validate CNPJ")
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalError, "Failed to validate CNPJ", nil, start)
		return
	}

	if !info.Valid {
		respondError(c, http.StatusUnprocessableEntity, models.ErrorCodeInvalidCNPJ,
			cnpj.Validate(req.CNPJ).Err().Error(),
			gin.H{"reason": info.Reason, "cleaned": info.Cleaned}, start)
		return
	}

	respond(c, http.StatusOK, models.NewSuccessResponse("CNPJ is valid", info), start)
}

// Batch validates many CNPJs on the worker pool
// @Summary Validate CNPJs in batch
// @Description Validate up to the configured number of CNPJs. Results keep the request order.
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "CNPJs to validate"
// @Success 200 {object} models.StandardResponse{data=models.BatchResponse}
// @Failure 400 {object} models.StandardResponse
// @Failure 500 {object} models.StandardResponse
// @Router /cnpj/batch [post]
func (h *CNPJHandler) Batch(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString(middleware.RequestIDKey)

	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, err.Error(), nil, start)
		return
	}

	resp, err := h.cnpjService.Batch(c.Request.Context(), req.CNPJs)
	switch {
	case errors.Is(err, services.ErrEmptyBatch):
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, err.Error(), nil, start)
		return
	case errors.Is(err, services.ErrBatchTooLarge):
		respondError(c, http.StatusBadRequest, models.ErrorCodeBatchTooLarge, err.Error(), nil, start)
		return
	case err != nil:
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"total":      len(req.CNPJs),
			"error":      err.Error(),
		}).Error("Failed to process batch")
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalError, "Failed to process batch", nil, start)
		return
	}

	respond(c, http.StatusOK, models.NewSuccessResponse("Batch processed", resp), start)
}

// Extract finds valid CNPJs in an HTML or plain text document
// @Summary Extract CNPJs from a document
// @Description The body is parsed as HTML when Content-Type is text/html or the body looks like markup, otherwise as plain text
// @Tags CNPJ
// @Accept plain
// @Accept html
// @Produce json
// @Success 200 {object} models.StandardResponse{data=models.ExtractResponse}
// @Failure 400 {object} models.StandardResponse
// @Router /cnpj/extract [post]
func (h *CNPJHandler) Extract(c *gin.Context) {
	start := time.Now()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxExtractBody+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, "Failed to read request body", nil, start)
		return
	}
	if len(body) == 0 {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, "Request body is empty", nil, start)
		return
	}
	if len(body) > maxExtractBody {
		respondError(c, http.StatusRequestEntityTooLarge, models.ErrorCodeInvalidRequest, "Request body is too large", nil, start)
		return
	}

	infos, err := h.cnpjService.Extract(c.Request.Context(), body, c.ContentType())
	if err != nil {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, err.Error(), nil, start)
		return
	}

	resp := models.ExtractResponse{CNPJs: infos, Count: len(infos)}
	respond(c, http.StatusOK, models.NewSuccessResponse("Extraction completed", resp), start)
}

// Generate completes a 12-digit base with its check digits
// @Summary Generate check digits
// @Description Complete a 12-digit CNPJ base (root plus branch) with its two check digits
// @Tags CNPJ
// @Produce json
// @Param base path string true "12-digit base" example(112223330001)
// @Success 200 {object} models.StandardResponse{data=models.GenerateResponse}
// @Failure 400 {object} models.StandardResponse
// @Router /cnpj/generate/{base} [get]
func (h *CNPJHandler) Generate(c *gin.Context) {
	start := time.Now()

	resp, err := h.cnpjService.Generate(c.Param("base"))
	if err != nil {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidCNPJ, err.Error(), nil, start)
		return
	}

	respond(c, http.StatusOK, models.NewSuccessResponse("Check digits generated", resp), start)
}
