package game

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/DMailloux03/DominosMemoryGame/internal/order"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// orderSummary is what the client may see about the current order:
// what to build, never the expected weights.
type orderSummary struct {
	Kind         order.Kind `json:"kind"`
	Size         string     `json:"size"`
	Crust        string     `json:"crust,omitempty"`
	Toppings     string     `json:"toppings,omitempty"`
	Modifier     string     `json:"modifier,omitempty"`
	ModifierNote string     `json:"modifier_note,omitempty"`
	Recipe       string     `json:"recipe,omitempty"`
}

func summarize(o order.Order) orderSummary {
	switch o.Kind {
	case order.KindPizza:
		return orderSummary{
			Kind:         o.Kind,
			Size:         o.Pizza.Size,
			Crust:        o.Pizza.Crust,
			Toppings:     describeToppings(o.Pizza),
			Modifier:     o.Pizza.Modifier.Label,
			ModifierNote: o.Pizza.Modifier.Description,
		}
	case order.KindPasta:
		return orderSummary{
			Kind:   o.Kind,
			Size:   o.Pasta.Size,
			Recipe: o.Pasta.Recipe,
		}
	}
	return orderSummary{}
}

func describeToppings(pizza *order.PizzaOrder) string {
	if len(pizza.Toppings) == 0 {
		return "Cheese-only pizza (no additional toppings)."
	}
	plural := ""
	if len(pizza.Toppings) > 1 {
		plural = "s"
	}
	return fmt.Sprintf(
		"%d topping%s: %s.",
		len(pizza.Toppings), plural, strings.Join(pizza.Toppings, ", "),
	)
}

func sessionResponse(session *Session) gin.H {
	return gin.H{
		"session": session,
		"order":   summarize(session.Order),
	}
}

// POST /games
func (h *Handler) Start(c *gin.Context) {
	var req struct {
		SpecialRequests *bool `json:"special_requests"`
	}
	// Body is optional; an empty POST starts with defaults.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	// Special requests default to on, like the original toggle.
	specialRequests := true
	if req.SpecialRequests != nil {
		specialRequests = *req.SpecialRequests
	}

	userID := c.GetString("userID")
	displayName := c.GetString("displayName")

	session, err := h.service.Start(userID, displayName, specialRequests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sessionResponse(session))
}

// GET /games/:id
func (h *Handler) Get(c *gin.Context) {
	session, err := h.service.Get(c.Param("id"), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// POST /games/:id/check
func (h *Handler) Check(c *gin.Context) {
	var req struct {
		Values map[string]string `json:"values"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, session, err := h.service.Check(c.Param("id"), c.GetString("userID"), req.Values)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"session": session,
	})
}

// POST /games/:id/reveal
func (h *Handler) Reveal(c *gin.Context) {
	revealed, session, err := h.service.Reveal(c.Param("id"), c.GetString("userID"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answers": revealed,
		"session": session,
	})
}

// POST /games/:id/next
func (h *Handler) Next(c *gin.Context) {
	session, err := h.service.Next(c.Param("id"), c.GetString("userID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// POST /games/:id/special-requests
func (h *Handler) SetSpecialRequests(c *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled required"})
		return
	}

	session, err := h.service.SetSpecialRequests(c.Param("id"), c.GetString("userID"), *req.Enabled)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrIncompleteSubmission),
		errors.Is(err, ErrOrderOpen),
		errors.Is(err, ErrOrderLocked),
		errors.Is(err, ErrRoundFinished):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
