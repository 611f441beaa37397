package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/kitchen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type fakeTickets struct {
	dates []time.Time
	err   error
}

func (f *fakeTickets) Ticket(_ context.Context, date time.Time) (*kitchen.Ticket, error) {
	f.dates = append(f.dates, date)
	if f.err != nil {
		return nil, f.err
	}
	return kitchen.NewTicket("Café da manhã", date.Format("02/01/2006"), kitchen.GroupItems(nil, nil), nil, 0), nil
}

type fakeSender struct {
	chats []int64
	err   error
}

func (f *fakeSender) SendKitchenTicket(_ context.Context, chatID int64, _ *kitchen.Ticket) error {
	if f.err != nil {
		return f.err
	}
	f.chats = append(f.chats, chatID)
	return nil
}

func TestSchedulerTick(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	clock := &fixedClock{now: time.Date(2026, 3, 14, 19, 59, 0, 0, loc)}
	tickets := &fakeTickets{}
	sender := &fakeSender{}
	core, logs := observer.New(zap.InfoLevel)

	s := NewScheduler(tickets, sender, clock, -100, 20, zap.New(core))
	ctx := context.Background()

	assert.False(t, s.Tick(ctx), "before the hour")
	assert.Empty(t, tickets.dates)

	clock.now = clock.now.Add(time.Minute)
	require.True(t, s.Tick(ctx))
	require.Len(t, tickets.dates, 1)
	assert.Equal(t, "2026-03-15", tickets.dates[0].Format("2006-01-02"), "ticket is for tomorrow")
	assert.Equal(t, []int64{-100}, sender.chats)
	assert.Equal(t, 1, logs.FilterMessage("Kitchen ticket sent").Len())

	clock.now = clock.now.Add(2 * time.Hour)
	assert.False(t, s.Tick(ctx), "once per day")

	clock.now = time.Date(2026, 3, 15, 20, 5, 0, 0, loc)
	assert.True(t, s.Tick(ctx))
	assert.Len(t, sender.chats, 2)
}

func TestSchedulerTick_RetriesAfterFailure(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)}
	tickets := &fakeTickets{}
	sender := &fakeSender{err: errors.New("telegram down")}
	core, logs := observer.New(zap.ErrorLevel)

	s := NewScheduler(tickets, sender, clock, 42, 20, zap.New(core))

	assert.False(t, s.Tick(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("Failed to send kitchen ticket").Len())

	sender.err = nil
	assert.True(t, s.Tick(context.Background()), "next check delivers")
}

func TestSchedulerStartWithoutChat(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewScheduler(&fakeTickets{}, &fakeSender{}, &fixedClock{}, 0, 20, zap.New(core))

	s.Start(context.Background())
	s.Stop()
	s.Stop()

	assert.Equal(t, 1, logs.FilterMessage("Kitchen chat not configured, ticket delivery disabled").Len())
}
