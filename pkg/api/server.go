package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jakechorley/skip-hire/pkg/core/model"
	"github.com/jakechorley/skip-hire/pkg/core/services"
)

// Server exposes skip offers as JSON for an external UI
type Server struct {
	source   services.SkipSource
	fallback services.FallbackProvider
	location model.Location
	logger   *zap.Logger
}

type offersResponse struct {
	Offers       []model.SkipOffer `json:"offers"`
	UsedFallback bool              `json:"usedFallback"`
	Error        string            `json:"error,omitempty"`
}

type selectionRequest struct {
	OfferID string `json:"offerId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a server that fetches offers for location on every request
func NewServer(source services.SkipSource, fallback services.FallbackProvider, location model.Location, logger *zap.Logger) *Server {
	return &Server{
		source:   source,
		fallback: fallback,
		location: location,
		logger:   logger,
	}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.Health)
	r.GET("/api/skips", s.ListOffers)
	r.POST("/api/skips/selection", s.ConfirmSelection)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListOffers always responds 200; fallback offers carry the failure message
func (s *Server) ListOffers(c *gin.Context) {
	result := services.FetchOffers(c.Request.Context(), s.source, s.fallback, s.location, s.logger)

	c.JSON(http.StatusOK, offersResponse{
		Offers:       result.Offers,
		UsedFallback: result.UsedFallback,
		Error:        result.ErrorMessage,
	})
}

func (s *Server) ConfirmSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result := services.FetchOffers(c.Request.Context(), s.source, s.fallback, s.location, s.logger)

	summary, err := services.ConfirmSelection(result.Offers, strings.TrimSpace(req.OfferID))
	switch {
	case errors.Is(err, services.ErrNoSelection):
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "offerId is required"})
		return
	case errors.Is(err, services.ErrOfferNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Info("Selection confirmed",
		zap.String("reference", summary.Reference),
		zap.String("offer_id", summary.Offer.ID))

	c.JSON(http.StatusOK, summary)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Debug("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
