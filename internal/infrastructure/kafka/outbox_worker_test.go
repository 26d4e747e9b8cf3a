package kafka

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timeZero = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type memOutbox struct {
	events []*usecase.OutboxEvent
}

func (m *memOutbox) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	event.ID = int64(len(m.events) + 1)
	m.events = append(m.events, event)
	return event, nil
}

func (m *memOutbox) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	var out []*usecase.OutboxEvent
	for _, ev := range m.events {
		if ev.Status == usecase.Pending && len(out) < limit {
			ev.Status = usecase.Processing
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *memOutbox) MarkAsProcessed(ctx context.Context, id int64) error {
	for _, ev := range m.events {
		if ev.ID == id {
			ev.Status = usecase.Processed
		}
	}
	return nil
}

type memProducer struct {
	sent []*usecase.WriteRawMessageReq
	fail map[int64]error
}

func (p *memProducer) WriteRawMessage(ctx context.Context, req *usecase.WriteRawMessageReq) error {
	if err := p.fail[req.Key]; err != nil {
		return err
	}
	p.sent = append(p.sent, req)
	return nil
}

func seed(t *testing.T, repo *memOutbox, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		ev, err := usecase.NewOutboxEvent(usecase.EventSaleRecorded, int64(i+1), map[string]any{"n": i}, timeZero)
		require.NoError(t, err)
		_, err = repo.Create(context.Background(), ev)
		require.NoError(t, err)
	}
}

func TestOutboxWorker_Drain(t *testing.T) {
	repo := &memOutbox{}
	producer := &memProducer{}
	seed(t, repo, 25)

	w := NewOutboxWorker(repo, logger.NewNopLogger(), producer, "")
	w.drain(context.Background())

	assert.Len(t, producer.sent, 25)
	for _, ev := range repo.events {
		assert.Equal(t, usecase.Processed, ev.Status)
	}
	assert.Equal(t, int64(1), producer.sent[0].Key)
	assert.Equal(t, usecase.EventSaleRecorded, producer.sent[0].EventType)
}

func TestOutboxWorker_FailedEventStaysProcessing(t *testing.T) {
	repo := &memOutbox{}
	producer := &memProducer{fail: map[int64]error{2: errors.New("dial tcp: connection refused")}}
	seed(t, repo, 3)

	w := NewOutboxWorker(repo, logger.NewNopLogger(), producer, "")
	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)

	assert.False(t, hasMore)
	assert.Len(t, producer.sent, 2)
	assert.Equal(t, usecase.Processing, repo.events[1].Status)
	assert.Equal(t, usecase.Processed, repo.events[2].Status)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(errors.New("write: Broken Pipe")))
	assert.False(t, isRetryableError(errors.New("message too large")))
	assert.False(t, isRetryableError(nil))
}

func TestNewMessage(t *testing.T) {
	msg := newMessage(usecase.NewWriteRawMessageReq(42, usecase.EventStockLow, []byte{1, 2}))

	assert.Equal(t, []byte("42"), msg.Key)
	assert.Equal(t, []byte{1, 2}, msg.Value)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, headerEventType, msg.Headers[0].Key)
	assert.Equal(t, []byte("stock.low"), msg.Headers[0].Value)
}

type chanConn struct {
	notifs  chan *pgconn.Notification
	waiting chan struct{}
	closed  atomic.Bool
}

func newChanConn() *chanConn {
	return &chanConn{
		notifs:  make(chan *pgconn.Notification),
		waiting: make(chan struct{}, 1),
	}
}

func (c *chanConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	select {
	case c.waiting <- struct{}{}:
	default:
	}

	select {
	case n := <-c.notifs:
		return n, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *chanConn) Close(ctx context.Context) error {
	c.closed.Store(true)
	return nil
}

func TestOutboxWorker_StopInterruptsNotificationWait(t *testing.T) {
	conn := newChanConn()
	w := NewOutboxWorker(&memOutbox{}, logger.NewNopLogger(), &memProducer{}, "")
	w.dial = func(context.Context) (notificationConn, error) { return conn, nil }

	w.Start(context.Background())

	select {
	case <-conn.waiting:
	case <-time.After(time.Second):
		t.Fatal("listener is not waiting for notifications")
	}

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on notification wait")
	}
	assert.True(t, conn.closed.Load())
}

func TestOutboxWorker_StopDuringReconnectBackoff(t *testing.T) {
	dialed := make(chan struct{}, 1)
	w := NewOutboxWorker(&memOutbox{}, logger.NewNopLogger(), &memProducer{}, "")
	w.dial = func(context.Context) (notificationConn, error) {
		select {
		case dialed <- struct{}{}:
		default:
		}
		return nil, errors.New("dial tcp: connection refused")
	}

	w.Start(context.Background())
	<-dialed

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on reconnect backoff")
	}
}

func TestOutboxWorker_StopWithoutStart(t *testing.T) {
	w := NewOutboxWorker(&memOutbox{}, logger.NewNopLogger(), &memProducer{}, "")
	w.Stop()
}
