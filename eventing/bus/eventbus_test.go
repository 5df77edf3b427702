package bus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedwork/eventing"
	"seedwork/eventing/bus"
	"seedwork/idgen/ulid"
	"seedwork/logging"
)

func init() {
	logging.SetLogger(logging.NewNoopLogger())
}

// recordingHandler 记录收到的事件类型
type recordingHandler struct {
	name string
	seen []string
	err  error
}

func (h *recordingHandler) HandleEvent(ctx context.Context, evt eventing.IEvent) error {
	h.seen = append(h.seen, evt.GetType())
	return h.err
}

func (h *recordingHandler) GetHandlerName() string { return h.name }

func makeEvent(eventType string) *eventing.Event {
	return eventing.NewEvent(ulid.Generate(), "Order", eventType, 1, nil)
}

func TestPublish_RoutesByType(t *testing.T) {
	b := bus.NewMemoryEventBus()
	placed := &recordingHandler{name: "placed"}
	cancelled := &recordingHandler{name: "cancelled"}
	b.Subscribe("OrderPlaced", placed)
	b.Subscribe("OrderCancelled", cancelled)

	require.NoError(t, b.Publish(context.Background(), makeEvent("OrderPlaced")))

	assert.Equal(t, []string{"OrderPlaced"}, placed.seen)
	assert.Empty(t, cancelled.seen)
}

func TestPublish_WildcardReceivesAll(t *testing.T) {
	b := bus.NewMemoryEventBus()
	all := &recordingHandler{name: "all"}
	b.Subscribe(bus.Wildcard, all)

	require.NoError(t, b.Publish(context.Background(), makeEvent("OrderPlaced")))
	require.NoError(t, b.Publish(context.Background(), makeEvent("OrderCancelled")))

	assert.Equal(t, []string{"OrderPlaced", "OrderCancelled"}, all.seen)
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	b := bus.NewMemoryEventBus()
	assert.NoError(t, b.Publish(context.Background(), makeEvent("OrderPlaced")))
}

func TestPublish_HandlerErrorPropagates(t *testing.T) {
	b := bus.NewMemoryEventBus()
	boom := errors.New("handler boom")
	failing := &recordingHandler{name: "failing", err: boom}
	after := &recordingHandler{name: "after"}
	b.Subscribe("OrderPlaced", failing)
	b.Subscribe("OrderPlaced", after)

	err := b.Publish(context.Background(), makeEvent("OrderPlaced"))
	require.Error(t, err)
	assert.Same(t, boom, err)
	// 同步分发在首个失败处停止
	assert.Empty(t, after.seen)
}

func TestPublishAll_Ordered(t *testing.T) {
	b := bus.NewMemoryEventBus()
	all := &recordingHandler{name: "all"}
	b.Subscribe(bus.Wildcard, all)

	events := []eventing.IEvent{
		makeEvent("AccountOpened"),
		makeEvent("MoneyDeposited"),
		makeEvent("MoneyWithdrawn"),
	}
	require.NoError(t, b.PublishAll(context.Background(), events))

	assert.Equal(t, []string{"AccountOpened", "MoneyDeposited", "MoneyWithdrawn"}, all.seen)
}

func TestEventHandlerFunc(t *testing.T) {
	var got string
	h := bus.EventHandlerFunc(func(ctx context.Context, evt eventing.IEvent) error {
		got = evt.GetType()
		return nil
	})

	require.NoError(t, h.HandleEvent(context.Background(), makeEvent("OrderPlaced")))
	assert.Equal(t, "OrderPlaced", got)
	assert.Equal(t, "EventHandlerFunc", h.GetHandlerName())
}

func TestUnsubscribe(t *testing.T) {
	b := bus.NewMemoryEventBus()
	h := &recordingHandler{name: "h"}
	b.Subscribe("OrderPlaced", h)

	b.Unsubscribe("OrderPlaced", h)
	require.NoError(t, b.Publish(context.Background(), makeEvent("OrderPlaced")))

	assert.Empty(t, h.seen)
}

func TestUnsubscribe_UnknownHandlerIsNoop(t *testing.T) {
	b := bus.NewMemoryEventBus()
	h := &recordingHandler{name: "h"}
	b.Subscribe("OrderPlaced", h)

	b.Unsubscribe("OrderPlaced", &recordingHandler{name: "other"})
	require.NoError(t, b.Publish(context.Background(), makeEvent("OrderPlaced")))

	assert.Equal(t, []string{"OrderPlaced"}, h.seen)
}
