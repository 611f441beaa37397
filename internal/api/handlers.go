package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/kitchen"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/Freeeeeet/pousada_bot/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxBatchIntents ограничивает размер одного пакета
const maxBatchIntents = 200

type boardResponse struct {
	Date    string                   `json:"date"`
	Slots   []model.Slot             `json:"slots"`
	Summary map[model.SlotStatus]int `json:"summary"`
}

type batchRequest struct {
	Date    string         `json:"date"`
	Intents []model.Intent `json:"intents"`
}

type overrideRequest struct {
	Status model.StructureStatus `json:"status"`
}

type kitchenCategory struct {
	Name  string             `json:"name"`
	Items []kitchenItemEntry `json:"items"`
}

type kitchenItemEntry struct {
	Name    string         `json:"name"`
	Count   int            `json:"count"`
	Flavors map[string]int `json:"flavors,omitempty"`
	Notes   []string       `json:"notes,omitempty"`
}

type kitchenResponse struct {
	Title      string            `json:"title"`
	Date       string            `json:"date"`
	Orders     int               `json:"orders"`
	Categories []kitchenCategory `json:"categories"`
}

// date разбирает ?date= (пусто - сегодня)
func (s *Server) date(c *gin.Context, raw string) (time.Time, bool) {
	date, err := s.boards.Calendar().ParseDay(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, false
	}
	return date, true
}

// GET /api/board?date=YYYY-MM-DD
func (s *Server) GetBoardHandler(c *gin.Context) {
	date, ok := s.date(c, c.Query("date"))
	if !ok {
		return
	}

	board, err := s.boards.DayBoard(c.Request.Context(), date)
	if err != nil {
		s.fail(c, err)
		return
	}

	slots := board.Slots
	if slots == nil {
		slots = []model.Slot{}
	}
	c.JSON(http.StatusOK, boardResponse{
		Date:    board.Date,
		Slots:   slots,
		Summary: board.Summary(),
	})
}

// POST /api/batches
// Все намерения применяются одной транзакцией или не применяются вовсе.
func (s *Server) ApplyBatchHandler(c *gin.Context) {
	var payload batchRequest
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(payload.Intents) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intents required"})
		return
	}
	if len(payload.Intents) > maxBatchIntents {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d intents per batch", maxBatchIntents)})
		return
	}
	if payload.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date required"})
		return
	}

	date, ok := s.date(c, payload.Date)
	if !ok {
		return
	}

	result, err := s.bookings.Apply(c.Request.Context(), date, payload.Intents, actor(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// PUT /api/overrides/:structureId?date=
func (s *Server) SetOverrideHandler(c *gin.Context) {
	date, ok := s.date(c, c.Query("date"))
	if !ok {
		return
	}

	var payload overrideRequest
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	structureID := c.Param("structureId")
	if err := s.boards.SetOverride(c.Request.Context(), date, structureID, payload.Status); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.DailyOverride{
		Date:        model.DateKey(date),
		StructureID: structureID,
		Status:      payload.Status,
	})
}

// DELETE /api/overrides/:structureId?date=
func (s *Server) ClearOverrideHandler(c *gin.Context) {
	date, ok := s.date(c, c.Query("date"))
	if !ok {
		return
	}

	if err := s.boards.ClearOverride(c.Request.Context(), date, c.Param("structureId")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/orders
func (s *Server) PlaceOrderHandler(c *gin.Context) {
	var order model.BreakfastOrder
	if err := c.BindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.kitchen.PlaceOrder(c.Request.Context(), &order); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /api/kitchen?date=
func (s *Server) GetKitchenHandler(c *gin.Context) {
	date, ok := s.date(c, c.Query("date"))
	if !ok {
		return
	}

	ticket, err := s.kitchen.Ticket(c.Request.Context(), date)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := kitchenResponse{
		Title:      ticket.Title,
		Date:       model.DateKey(date),
		Orders:     ticket.Orders,
		Categories: []kitchenCategory{},
	}
	for _, category := range ticket.Categories {
		entry := kitchenCategory{Name: category}
		for _, name := range kitchen.SortedItems(ticket.Grouped[category]) {
			summary := ticket.Grouped[category][name]
			entry.Items = append(entry.Items, kitchenItemEntry{
				Name:    name,
				Count:   summary.Count,
				Flavors: summary.Flavors,
				Notes:   summary.Notes,
			})
		}
		resp.Categories = append(resp.Categories, entry)
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/kitchen.pdf?date=
func (s *Server) GetKitchenPDFHandler(c *gin.Context) {
	date, ok := s.date(c, c.Query("date"))
	if !ok {
		return
	}

	ticket, err := s.kitchen.Ticket(c.Request.Context(), date)
	if err != nil {
		s.fail(c, err)
		return
	}

	data, err := ticket.PDF()
	if err != nil {
		s.fail(c, err)
		return
	}

	filename := fmt.Sprintf("cozinha-%s.pdf", model.DateKey(date))
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// fail переводит ошибку сервиса в HTTP статус
func (s *Server) fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("API request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrStructureNotFound), errors.Is(err, service.ErrUnknownSlot):
		return http.StatusNotFound
	case errors.Is(err, availability.ErrNotPending), errors.Is(err, availability.ErrSlotElapsed):
		return http.StatusConflict
	case errors.Is(err, availability.ErrInvalidIntent),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
