package telemetry

import (
	"context"
)

const meterName = "github.com/freelancehub/backend/kanban"

// KanbanMetrics counts card moves, split by whether the card changed column.
type KanbanMetrics struct {
	moves *Counter
}

// NewKanbanMetrics registers the kanban instruments on mp.
func NewKanbanMetrics(mp *MeterProvider) (*KanbanMetrics, error) {
	moves, err := NewCounter(mp.Meter(meterName), "kanban_card_moves_total", "Cards moved on kanban boards", "{move}")
	if err != nil {
		return nil, err
	}
	return &KanbanMetrics{moves: moves}, nil
}

// RecordCardMove counts one card move.
func (m *KanbanMetrics) RecordCardMove(ctx context.Context, crossColumn bool) {
	kind := "reorder"
	if crossColumn {
		kind = "cross_column"
	}
	m.moves.Inc(ctx, AttrMoveKind.String(kind))
}
