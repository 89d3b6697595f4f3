package api

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/subuhana2303/vaanirakshak/internal/assistant"
	"github.com/subuhana2303/vaanirakshak/internal/geo"
	"github.com/subuhana2303/vaanirakshak/internal/location"
	"github.com/subuhana2303/vaanirakshak/internal/models"
	"github.com/subuhana2303/vaanirakshak/internal/repository"
	"github.com/subuhana2303/vaanirakshak/internal/shelter"
)

// Injector lets the API push a phrase into the utterance source, standing in
// for speech recognition during demos.
type Injector interface {
	Inject(phrase string)
}

type Handler struct {
	session     *assistant.Session
	shelters    []models.Shelter
	locations   location.Provider
	alerts      repository.AlertRepository
	broadcaster *assistant.Broadcaster
	injector    Injector
	maxShelters int

	// base context for the listening loop started via the API
	ctx context.Context
}

func NewHandler(
	ctx context.Context,
	session *assistant.Session,
	shelters []models.Shelter,
	locations location.Provider,
	alerts repository.AlertRepository,
	broadcaster *assistant.Broadcaster,
	injector Injector,
	maxShelters int,
) *Handler {
	return &Handler{
		session:     session,
		shelters:    shelters,
		locations:   locations,
		alerts:      alerts,
		broadcaster: broadcaster,
		injector:    injector,
		maxShelters: maxShelters,
		ctx:         ctx,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)
	r.POST("/api/requests", h.postRequest)
	r.GET("/api/shelters/nearest", h.getNearestShelters)
	r.GET("/api/alerts", h.getAlerts)
	r.GET("/api/numbers", h.getNumbers)
	r.GET("/api/numbers/:service", h.getNumber)
	r.GET("/api/status", h.getStatus)
	r.POST("/api/listening/start", h.startListening)
	r.POST("/api/listening/stop", h.stopListening)
	r.POST("/api/mic/inject", h.injectPhrase)
	r.GET("/api/events", h.streamEvents)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type requestBody struct {
	Text string `json:"text" binding:"required"`
}

// postRequest is the manual-input path: it runs synchronously on the request
// goroutine, concurrently with the listening loop.
func (h *Handler) postRequest(c *gin.Context) {
	var body requestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	category, answer := h.session.HandleText(body.Text)

	if h.broadcaster != nil {
		h.broadcaster.Broadcast(assistant.Event{
			Kind:      assistant.EventResponse,
			Utterance: body.Text,
			Category:  category,
			Response:  answer,
			Timestamp: time.Now(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"utterance": body.Text,
		"category":  category,
		"response":  answer,
	})
}

type rankedShelterView struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
	Contact    string   `json:"contact"`
	DistanceKM float64  `json:"distance_km"`
	Distance   string   `json:"distance"`
}

func (h *Handler) getNearestShelters(c *gin.Context) {
	limit := shelter.DefaultLimit
	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= h.maxShelters {
			limit = lim
		}
	}

	ranked := shelter.Nearest(h.locations.CurrentLocation(), h.shelters, limit)

	views := make([]rankedShelterView, 0, len(ranked))
	for _, rs := range ranked {
		views = append(views, rankedShelterView{
			Name:       rs.Shelter.Name,
			Address:    rs.Shelter.Address,
			Capacity:   rs.Shelter.Capacity,
			Facilities: rs.Shelter.Facilities,
			Contact:    rs.Shelter.Contact,
			DistanceKM: rs.DistanceKM,
			Distance:   geo.FormatDistance(rs.DistanceKM),
		})
	}

	c.JSON(http.StatusOK, gin.H{"shelters": views})
}

func (h *Handler) getAlerts(c *gin.Context) {
	limit := 20
	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= 500 {
			limit = lim
		}
	}

	alerts, err := h.alerts.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alerts"})
		return
	}

	type alertView struct {
		ID        string          `json:"id"`
		Category  models.Category `json:"category"`
		Message   string          `json:"message"`
		Latitude  float64         `json:"latitude"`
		Longitude float64         `json:"longitude"`
		CreatedAt time.Time       `json:"created_at"`
	}

	views := make([]alertView, 0, len(alerts))
	for _, a := range alerts {
		views = append(views, alertView(a))
	}

	c.JSON(http.StatusOK, gin.H{"alerts": views})
}

func (h *Handler) getNumbers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"numbers": models.EmergencyNumbers()})
}

func (h *Handler) getNumber(c *gin.Context) {
	service := c.Param("service")
	c.JSON(http.StatusOK, gin.H{
		"service": service,
		"number":  models.EmergencyNumber(service),
	})
}

func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.State())
}

func (h *Handler) startListening(c *gin.Context) {
	if err := h.session.Start(h.ctx); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"listening": true})
}

func (h *Handler) stopListening(c *gin.Context) {
	h.session.Stop()
	c.JSON(http.StatusOK, gin.H{"listening": false})
}

type injectBody struct {
	Phrase string `json:"phrase" binding:"required"`
}

func (h *Handler) injectPhrase(c *gin.Context) {
	if h.injector == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "no virtual microphone configured"})
		return
	}

	var body injectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phrase is required"})
		return
	}

	h.injector.Inject(body.Phrase)
	c.JSON(http.StatusAccepted, gin.H{"injected": body.Phrase})
}

// streamEvents pushes assistant events to the client as SSE until the client
// disconnects or the broadcaster closes.
func (h *Handler) streamEvents(c *gin.Context) {
	if h.broadcaster == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "event streaming not configured"})
		return
	}

	id, events := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case e, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(e.Kind), e)
			return true
		}
	})
}
