package events_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tossaporn/school-budget/internal/core/events"
)

func TestEvents(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Events Suite")
}

var _ = Describe("EventBus", func() {
	var bus *events.EventBus

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = events.NewEventBus(logger)
	})

	It("should dispatch to handlers in registration order before returning", func() {
		var calls []string
		bus.Subscribe(events.RequestStatusChangedEvent, func(ctx context.Context, e events.Event) error {
			calls = append(calls, "first")
			return nil
		})
		bus.Subscribe(events.RequestStatusChangedEvent, func(ctx context.Context, e events.Event) error {
			calls = append(calls, "second")
			return nil
		})

		err := bus.Publish(context.Background(), events.NewRequestStatusChanged("r1", "p1", "pending_head", "pending_finance", 1000))

		Expect(err).ToNot(HaveOccurred())
		Expect(calls).To(Equal([]string{"first", "second"}))
	})

	It("should surface a handler failure to the publisher", func() {
		bus.Subscribe(events.RequestSubmittedEvent, func(ctx context.Context, e events.Event) error {
			return errors.New("recompute failed")
		})

		err := bus.Publish(context.Background(), events.NewRequestSubmitted("r1", "p1", "u1", 1000))

		Expect(err).To(HaveOccurred())
	})

	It("should stop at the first failing handler", func() {
		var secondCalled bool
		bus.Subscribe(events.RequestStatusChangedEvent, func(ctx context.Context, e events.Event) error {
			return errors.New("boom")
		})
		bus.Subscribe(events.RequestStatusChangedEvent, func(ctx context.Context, e events.Event) error {
			secondCalled = true
			return nil
		})

		err := bus.Publish(context.Background(), events.NewRequestStatusChanged("r1", "p1", "approved", "completed", 500))

		Expect(err).To(HaveOccurred())
		Expect(secondCalled).To(BeFalse())
	})

	It("should ignore events with no subscribers", func() {
		err := bus.Publish(context.Background(), events.NewRequestSubmitted("r1", "p1", "u1", 1000))

		Expect(err).ToNot(HaveOccurred())
	})

	It("should carry the workflow payload", func() {
		var got events.Event
		bus.Subscribe(events.RequestStatusChangedEvent, func(ctx context.Context, e events.Event) error {
			got = e
			return nil
		})

		err := bus.Publish(context.Background(), events.NewRequestStatusChanged("r1", "p1", "pending_finance", "approved", 49999))
		Expect(err).ToNot(HaveOccurred())

		payload, ok := got.Payload().(map[string]interface{})
		Expect(ok).To(BeTrue())
		Expect(payload["request_id"]).To(Equal("r1"))
		Expect(payload["new_status"]).To(Equal("approved"))
		Expect(payload["amount"]).To(Equal(int64(49999)))
	})
})
