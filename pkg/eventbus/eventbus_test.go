package eventbus_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/fmstack/fmstack/pkg/eventbus"
)

func newBus() eventbus.EventBus {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return eventbus.NewEventPublisher(l)
}

type assetCreated struct {
	Name string
}

func TestEventBus_PublishMatchesBySignature(t *testing.T) {
	t.Parallel()

	bus := newBus()
	var got []string
	bus.Subscribe(func(e assetCreated) {
		got = append(got, e.Name)
	})
	bus.Subscribe(func(n int) {
		t.Fatal("int handler must not fire for assetCreated")
	})

	bus.Publish(assetCreated{Name: "HVAC-1"})
	require.Equal(t, []string{"HVAC-1"}, got)
}

func TestEventBus_PanicInHandlerIsRecovered(t *testing.T) {
	t.Parallel()

	bus := newBus()
	fired := false
	bus.Subscribe(func(e assetCreated) {
		panic("boom")
	})
	bus.Subscribe(func(e assetCreated) {
		fired = true
	})

	require.NotPanics(t, func() {
		bus.Publish(assetCreated{Name: "x"})
	})
	require.True(t, fired)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	bus := newBus()
	handler := func(e assetCreated) {
		t.Fatal("unsubscribed handler fired")
	}
	bus.Subscribe(handler)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	require.Equal(t, 0, bus.SubscribersCount())
	bus.Publish(assetCreated{})
}

func TestEventBus_PublishEJoinsErrors(t *testing.T) {
	t.Parallel()

	bus := newBus().(interface {
		eventbus.EventBus
		PublishE(args ...any) error
	})

	sentinel := errors.New("handler failed")
	bus.Subscribe(func(e assetCreated) error {
		return sentinel
	})
	bus.Subscribe(func(e assetCreated) error {
		return nil
	})

	err := bus.PublishE(assetCreated{})
	require.ErrorIs(t, err, sentinel)
}

func TestEventBus_PublishENoSubscribers(t *testing.T) {
	t.Parallel()

	bus := newBus().(interface {
		eventbus.EventBus
		PublishE(args ...any) error
	})

	require.ErrorIs(t, bus.PublishE(assetCreated{}), eventbus.ErrNoSubscribers)
}
