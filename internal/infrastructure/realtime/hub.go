// Package realtime pushes committed kanban board changes to websocket
// subscribers of that board.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/freelancehub/backend/internal/domain/kanban"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type broadcast struct {
	ownerID uuid.UUID
	boardID uuid.UUID
	payload []byte
}

// Hub tracks the subscribers of every board. All client bookkeeping
// happens on the Run goroutine.
type Hub struct {
	logger     *zap.Logger
	boards     map[uuid.UUID]map[*Client]struct{}
	registerC  chan *Client
	unregC     chan *Client
	broadcastC chan broadcast
	done       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a hub; call Run to start it
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		boards:     make(map[uuid.UUID]map[*Client]struct{}),
		registerC:  make(chan *Client),
		unregC:     make(chan *Client),
		broadcastC: make(chan broadcast, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) unregister(c *Client) {
	select {
	case h.unregC <- c:
	case <-h.done:
	}
}

// Run serves the hub until ctx is cancelled. Remaining subscribers are
// disconnected on return.
func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case c := <-h.registerC:
			subs, ok := h.boards[c.boardID]
			if !ok {
				subs = make(map[*Client]struct{})
				h.boards[c.boardID] = subs
			}
			subs[c] = struct{}{}
		case c := <-h.unregC:
			h.drop(c)
		case b := <-h.broadcastC:
			for c := range h.boards[b.boardID] {
				if c.ownerID != b.ownerID {
					continue
				}
				select {
				case c.send <- b.payload:
				default:
					h.logger.Debug("subscriber too slow, disconnecting", zap.String("board_id", b.boardID.String()))
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *Client) {
	subs, ok := h.boards[c.boardID]
	if !ok {
		return
	}
	if _, ok := subs[c]; !ok {
		return
	}
	delete(subs, c)
	close(c.send)
	if len(subs) == 0 {
		delete(h.boards, c.boardID)
	}
}

func (h *Hub) closeAll() {
	for _, subs := range h.boards {
		for c := range subs {
			close(c.send)
		}
	}
	h.boards = make(map[uuid.UUID]map[*Client]struct{})
}

// Subscribe attaches conn to boardID for ownerID and starts its pumps.
// The caller must already have checked that ownerID owns the board.
func (h *Hub) Subscribe(conn *websocket.Conn, ownerID, boardID uuid.UUID) {
	c := &Client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		ownerID: ownerID,
		boardID: boardID,
		logger:  h.logger,
	}
	select {
	case h.registerC <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}
	h.wg.Add(2)
	go func() {
		defer h.wg.Done()
		c.writePump()
	}()
	go func() {
		defer h.wg.Done()
		c.readPump()
	}()
}

// Wait blocks until every client goroutine has exited
func (h *Hub) Wait() {
	h.wg.Wait()
}

// Handle implements shared.EventHandler for kanban board changes
func (h *Hub) Handle(ctx context.Context, event shared.DomainEvent) error {
	changed, ok := event.(*kanban.BoardChangedEvent)
	if !ok {
		return nil
	}
	payload, err := json.Marshal(Message{Type: kanban.EventTypeBoardChanged, Data: changed})
	if err != nil {
		return err
	}
	b := broadcast{ownerID: changed.OwnerID(), boardID: changed.BoardID, payload: payload}
	select {
	case h.broadcastC <- b:
	case <-h.done:
	case <-ctx.Done():
		return ctx.Err()
	default:
		h.logger.Warn("realtime broadcast queue full, dropping event", zap.String("board_id", changed.BoardID.String()))
	}
	return nil
}

// EventTypes implements shared.EventHandler
func (h *Hub) EventTypes() []string {
	return []string{kanban.EventTypeBoardChanged}
}

var _ shared.EventHandler = (*Hub)(nil)
