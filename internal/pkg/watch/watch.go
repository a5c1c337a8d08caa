package watch

import (
	"sync"
	"time"

	"dispatch/internal/entities"
)

type EventType string

const (
	EventOrderStatus EventType = "order.status"
	EventPosition    EventType = "courier.position"
	EventETA         EventType = "route.eta"
)

type Event struct {
	Type       EventType
	OrderID    string
	Status     entities.OrderStatusType
	CourierID  *int64
	Point      *entities.RoutePoint
	ETASeconds *int64
	At         time.Time
}

// Буфер подписчика. Медленный потребитель теряет события,
// но никогда не блокирует издателя; polling остается fallback-каналом.
const subscriptionBuffer = 16

// Hub - внутрипроцессный издатель событий заказа.
// Подписка на order id, доставка best-effort.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*Subscription]struct{}),
	}
}

type Subscription struct {
	hub     *Hub
	orderID string
	ch      chan Event
	once    sync.Once
}

func (h *Hub) Subscribe(orderID string) *Subscription {
	sub := &Subscription{
		hub:     h,
		orderID: orderID,
		ch:      make(chan Event, subscriptionBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[orderID] == nil {
		h.subs[orderID] = make(map[*Subscription]struct{})
	}
	h.subs[orderID][sub] = struct{}{}

	return sub
}

// Publish рассылает событие всем подписчикам заказа.
// Отправка неблокирующая: переполненный буфер теряет событие.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[event.OrderID] {
		select {
		case sub.ch <- event:
		default:
		}
	}
}

func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close отписывает и закрывает канал. Повторный вызов безопасен.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.subs[sub.orderID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(h.subs, sub.orderID)
		}
	}
}
