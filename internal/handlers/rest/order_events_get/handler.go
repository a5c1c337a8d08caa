package order_events_get

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"dispatch/internal/pkg/watch"
	"dispatch/pkg/logger"
)

// Интервал keep-alive комментариев, чтобы прокси не резали
// простаивающее SSE-соединение.
const heartbeatInterval = 15 * time.Second

// Handler - SSE-поток событий заказа поверх внутрипроцессного хаба.
// Поток best-effort: медленный клиент теряет события, polling
// GET-ручек остается резервным каналом.
type Handler struct {
	log handlerLogger
	hub Subscriber
}

func New(log handlerLogger, hub Subscriber) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		hub: hub,
	}
}

type eventDTO struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status,omitempty"`
	CourierID  *int64    `json:"courier_id,omitempty"`
	Point      *pointDTO `json:"point,omitempty"`
	ETASeconds *int64    `json:"eta_seconds,omitempty"`
	At         time.Time `json:"at"`
}

type pointDTO struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	CapturedAt time.Time `json:"captured_at"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sub := h.hub.Subscribe(orderID)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := h.writeEvent(w, event); err != nil {
				h.log.With(
					logger.NewField("error", err),
					logger.NewField("order", orderID),
				).Warn("write SSE event")
				return
			}
			flusher.Flush()
		}
	}
}

func (h *Handler) writeEvent(w http.ResponseWriter, event watch.Event) error {
	payload := eventDTO{
		Type:       string(event.Type),
		OrderID:    event.OrderID,
		Status:     event.Status.String(),
		CourierID:  event.CourierID,
		ETASeconds: event.ETASeconds,
		At:         event.At,
	}

	if event.Point != nil {
		payload.Point = &pointDTO{
			Lat:        event.Point.Lat,
			Lng:        event.Point.Lng,
			CapturedAt: event.Point.CapturedAt,
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data); err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	return nil
}
