package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-geo/internal/api/middleware"
	"github.com/nexconsult/cnpj-geo/internal/geometry"
	"github.com/nexconsult/cnpj-geo/internal/models"
)

// GeometryHandler handles rectangle requests
type GeometryHandler struct {
	logger *logrus.Logger
}

// NewGeometryHandler creates a new geometry handler
func NewGeometryHandler(logger *logrus.Logger) *GeometryHandler {
	return &GeometryHandler{logger: logger}
}

// bindError maps a decoding failure to INVALID_GEOMETRY or INVALID_REQUEST
func bindError(c *gin.Context, err error, start time.Time) {
	code := models.ErrorCodeInvalidRequest
	if errors.Is(err, geometry.ErrInvalidGeometry) {
		code = models.ErrorCodeInvalidGeometry
	}
	respondError(c, http.StatusBadRequest, code, err.Error(), nil, start)
}

// Intersection reports how two rectangles overlap
// @Summary Intersect two rectangles
// @Description Rectangles use inclusive integer bounds with x1<=x2 and y1<=y2. Touching edges count as an intersection.
// @Tags Geometry
// @Accept json
// @Produce json
// @Param request body models.IntersectionRequest true "Rectangles a and b"
// @Success 200 {object} models.StandardResponse{data=models.IntersectionResponse}
// @Failure 400 {object} models.StandardResponse
// @Router /geometry/intersection [post]
func (h *GeometryHandler) Intersection(c *gin.Context) {
	start := time.Now()

	var req models.IntersectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, start)
		return
	}

	a, b := *req.A, *req.B
	resp := models.IntersectionResponse{
		AreaA: a.Area(),
		AreaB: b.Area(),
	}
	if overlap, ok := geometry.Intersection(a, b); ok {
		resp.Intersects = true
		resp.Intersection = &overlap
		resp.IntersectionArea = overlap.Area()
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"a":          a.String(),
		"b":          b.String(),
		"intersects": resp.Intersects,
	}).Debug("Intersection computed")

	respond(c, http.StatusOK, models.NewSuccessResponse("Intersection computed", resp), start)
}

// Contains reports whether a point lies inside a rectangle
// @Summary Point containment
// @Description Bounds are inclusive, so points on the edge are contained
// @Tags Geometry
// @Accept json
// @Produce json
// @Param request body models.ContainsRequest true "Rectangle and point"
// @Success 200 {object} models.StandardResponse{data=models.ContainsResponse}
// @Failure 400 {object} models.StandardResponse
// @Router /geometry/contains [post]
func (h *GeometryHandler) Contains(c *gin.Context) {
	start := time.Now()

	var req models.ContainsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, start)
		return
	}

	resp := models.ContainsResponse{
		Rectangle: *req.Rectangle,
		X:         *req.X,
		Y:         *req.Y,
		Contains:  req.Rectangle.Contains(*req.X, *req.Y),
	}
	respond(c, http.StatusOK, models.NewSuccessResponse("Containment computed", resp), start)
}

// Area describes a rectangle given as x1,y1,x2,y2
// @Summary Rectangle area
// @Description Area counts inclusive lattice points, (x2-x1+1)*(y2-y1+1). Width and height are x2-x1 and y2-y1.
// @Tags Geometry
// @Produce json
// @Param rect query string true "x1,y1,x2,y2" example(3,5,11,11)
// @Success 200 {object} models.StandardResponse{data=models.RectangleInfo}
// @Failure 400 {object} models.StandardResponse
// @Router /geometry/area [get]
func (h *GeometryHandler) Area(c *gin.Context) {
	start := time.Now()

	raw, ok := c.GetQuery("rect")
	if !ok {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, "query parameter rect is required", nil, start)
		return
	}

	r, err := geometry.Parse(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidGeometry, err.Error(), nil, start)
		return
	}

	resp := models.RectangleInfo{
		Rectangle: r,
		Area:      r.Area(),
		Width:     r.Width(),
		Height:    r.Height(),
		String:    r.String(),
	}
	respond(c, http.StatusOK, models.NewSuccessResponse("Area computed", resp), start)
}
