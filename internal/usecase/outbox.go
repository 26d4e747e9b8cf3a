package usecase

import (
	"time"

	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	EventSaleRecorded OutboxEventType = "sale.recorded"
	EventStockLow     OutboxEventType = "stock.low"
)

// OutboxEvent — событие, записанное в той же транзакции, что и изменение данных.
// AggregateID — id товара, он же ключ сообщения в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	AggregateID int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// NewOutboxEvent кодирует поля события в protobuf Struct.
// В payload дополнительно попадают eventId, eventType и occurredAt.
func NewOutboxEvent(eventType OutboxEventType, aggregateID int64, fields map[string]any, now time.Time) (*OutboxEvent, error) {
	const op = "usecase.NewOutboxEvent"

	eventID := uuid.NewString()

	body := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		body[k] = v
	}
	body["eventId"] = eventID
	body["eventType"] = string(eventType)
	body["occurredAt"] = now.UTC().Format(time.RFC3339)

	st, err := structpb.NewStruct(body)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := proto.Marshal(st)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   now,
	}, nil
}

// DecodeOutboxPayload разбирает payload события обратно в map.
func DecodeOutboxPayload(payload []byte) (map[string]any, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(payload, &st); err != nil {
		return nil, e.Wrap("usecase.DecodeOutboxPayload", err)
	}
	return st.AsMap(), nil
}
