package models

import (
	"time"

	"github.com/nexconsult/cnpj-geo/internal/cnpj"
	"github.com/nexconsult/cnpj-geo/internal/geometry"
)

// ValidateRequest is the body of POST /cnpj/validate
type ValidateRequest struct {
	CNPJ string `json:"cnpj" binding:"required" example:"11.222.333/0001-81"`
}

// BatchRequest is the body of POST /cnpj/batch
type BatchRequest struct {
	CNPJs []string `json:"cnpjs" binding:"required"`
}

// BatchResult is the outcome for one item of a batch
type BatchResult struct {
	Input string     `json:"input"`
	Info  *cnpj.Info `json:"info,omitempty"`
	Error string     `json:"error,omitempty"`
}

// BatchStats summarises a batch run
type BatchStats struct {
	Total    int           `json:"total"`
	Valid    int           `json:"valid"`
	Invalid  int           `json:"invalid"`
	Errors   int           `json:"errors"`
	Duration time.Duration `json:"duration_ns"`
}

// BatchResponse is the payload of POST /cnpj/batch
type BatchResponse struct {
	Results []BatchResult `json:"results"`
	Stats   BatchStats    `json:"stats"`
}

// ExtractResponse is the payload of POST /cnpj/extract
type ExtractResponse struct {
	CNPJs []cnpj.Info `json:"cnpjs"`
	Count int         `json:"count"`
}

// GenerateResponse is the payload of GET /cnpj/generate/:base
type GenerateResponse struct {
	Base        string `json:"base"`
	CheckDigits string `json:"check_digits"`
	CNPJ        string `json:"cnpj"`
	Formatted   string `json:"formatted"`
}

// IntersectionRequest is the body of POST /geometry/intersection
type IntersectionRequest struct {
	A *geometry.Rectangle `json:"a" binding:"required"`
	B *geometry.Rectangle `json:"b" binding:"required"`
}

// IntersectionResponse reports how two rectangles overlap
type IntersectionResponse struct {
	Intersects       bool                `json:"intersects"`
	Intersection     *geometry.Rectangle `json:"intersection"`
	IntersectionArea int64               `json:"intersection_area"`
	AreaA            int64               `json:"area_a"`
	AreaB            int64               `json:"area_b"`
}

// ContainsRequest is the body of POST /geometry/contains
type ContainsRequest struct {
	Rectangle *geometry.Rectangle `json:"rectangle" binding:"required"`
	X         *int                `json:"x" binding:"required"`
	Y         *int                `json:"y" binding:"required"`
}

// ContainsResponse is the payload of POST /geometry/contains
type ContainsResponse struct {
	Rectangle geometry.Rectangle `json:"rectangle"`
	X         int                `json:"x"`
	Y         int                `json:"y"`
	Contains  bool               `json:"contains"`
}

// RectangleInfo describes a single rectangle
type RectangleInfo struct {
	Rectangle geometry.Rectangle `json:"rectangle"`
	Area      int64              `json:"area"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	String    string             `json:"string"`
}

// HealthResponse is the payload of GET /health
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    string                 `json:"uptime"`
	Services  map[string]ServiceInfo `json:"services"`
}

// ServiceInfo describes the health of one dependency
type ServiceInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
