package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/StevenCC12/server-side-capi/docs"
	"github.com/StevenCC12/server-side-capi/internal/dto"
	"github.com/StevenCC12/server-side-capi/internal/service"
)

type Handler struct {
	relay  service.Relayer
	router *gin.Engine
	log    *zap.Logger
}

func NewHandler(relay service.Relayer, log *zap.Logger) *Handler {
	h := &Handler{
		relay:  relay,
		router: gin.Default(),
		log:    log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/capture", h.capturePageView)
	h.router.POST("/track/:page", h.trackInteraction)
	h.router.POST("/confirm/:page", h.confirmPurchase)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check that the relay and its session store are up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.relay.Health(c.Request.Context()); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// capturePageView handles POST /capture
// @Summary Capture attribution for a page view
// @Description Record UTM/click-ID parameters and pixel cookies for the session
// @Tags capture
// @Accept json
// @Produce json
// @Param pageview body dto.PageViewRequest true "Page view data"
// @Success 202 {object} dto.CaptureResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /capture [post]
func (h *Handler) capturePageView(c *gin.Context) {
	var req dto.PageViewRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid capture request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp := h.relay.CapturePageView(c.Request.Context(), &req)
	c.JSON(http.StatusAccepted, resp)
}

// trackInteraction handles POST /track/:page
// @Summary Track a conversion interaction
// @Description Assemble and deliver the conversion event for a form submit or click on a funnel page
// @Tags track
// @Accept json
// @Produce json
// @Param page path string true "Funnel page slug" example:"optin"
// @Param interaction body dto.InteractionRequest true "Interaction data"
// @Success 202 {object} dto.TrackResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /track/{page} [post]
func (h *Handler) trackInteraction(c *gin.Context) {
	var req dto.InteractionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid track request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	page := c.Param("page")
	resp, err := h.relay.TrackInteraction(c.Request.Context(), page, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPage) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "unknown_page",
				Message: "no funnel page named " + page,
			})
			return
		}
		h.log.Error("Failed to track interaction",
			zap.String("page", page),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// confirmPurchase handles POST /confirm/:page
// @Summary Confirm a stashed purchase
// @Description Replay the purchase draft stashed at checkout as a Purchase event
// @Tags track
// @Accept json
// @Produce json
// @Param page path string true "Funnel page slug" example:"confirmation"
// @Param confirmation body dto.ConfirmationRequest true "Confirmation data"
// @Success 202 {object} dto.ConfirmResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /confirm/{page} [post]
func (h *Handler) confirmPurchase(c *gin.Context) {
	var req dto.ConfirmationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid confirm request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	page := c.Param("page")
	resp, err := h.relay.ConfirmPurchase(c.Request.Context(), page, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPage) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "unknown_page",
				Message: "no funnel page named " + page,
			})
			return
		}
		h.log.Error("Failed to confirm purchase",
			zap.String("page", page),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, resp)
}
