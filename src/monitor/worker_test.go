package monitor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dongqixiaoquan-sketch/gold/src/eventpubsub"
	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

type stubResolver struct {
	result models.PriceResult
}

func (r *stubResolver) Resolve(ctx context.Context) models.PriceResult {
	return r.result
}

type panicResolver struct{}

func (r *panicResolver) Resolve(ctx context.Context) models.PriceResult {
	panic("provider blew up")
}

func newTestSession(t *testing.T) *SessionContext {
	t.Helper()

	session := NewSessionContext()
	_, err := session.InitStrategy(models.NewStrategyConfig(600, 4, 35, 60))
	require.NoError(t, err)

	return session
}

func newTestWorker(t *testing.T, session *SessionContext, source PriceResolver) (*MonitorWorker, *sync.WaitGroup) {
	t.Helper()

	wg := &sync.WaitGroup{}
	w, err := NewMonitorWorkerClient(wg, session, source, 30*time.Second)
	require.NoError(t, err)

	return w, wg
}

func TestValidateInterval(t *testing.T) {
	assert.NoError(t, ValidateInterval(30*time.Second))
	assert.NoError(t, ValidateInterval(60*time.Second))
	assert.NoError(t, ValidateInterval(300*time.Second))

	assert.ErrorIs(t, ValidateInterval(0), models.InvalidIntervalErr)
	assert.ErrorIs(t, ValidateInterval(29*time.Second), models.InvalidIntervalErr)
	assert.ErrorIs(t, ValidateInterval(45*time.Second), models.InvalidIntervalErr)
	assert.ErrorIs(t, ValidateInterval(330*time.Second), models.InvalidIntervalErr)
}

func TestSessionContext(t *testing.T) {
	t.Run("init strategy clears history", func(t *testing.T) {
		session := newTestSession(t)
		session.History().Append(models.ProfitSnapshot{CurrentPrice: 600})

		_, err := session.InitStrategy(models.NewStrategyConfig(610, 4, 35, 60))
		require.NoError(t, err)

		assert.Equal(t, 0, session.History().Len())
		assert.Equal(t, 610.0, session.Strategy().Config().InitialPrice)
	})

	t.Run("rejected config retains the prior strategy", func(t *testing.T) {
		session := newTestSession(t)
		session.History().Append(models.ProfitSnapshot{CurrentPrice: 600})

		_, err := session.InitStrategy(models.NewStrategyConfig(610, -1, 35, 60))
		assert.ErrorIs(t, err, models.NegativeSpreadErr)

		assert.Equal(t, 600.0, session.Strategy().Config().InitialPrice)
		assert.Equal(t, 1, session.History().Len())
	})
}

func TestTick(t *testing.T) {
	ctx := context.Background()

	t.Run("price above breakeven up raises AlertUp", func(t *testing.T) {
		eventpubsub.Init()

		alerts := make(chan models.AlertUp, 1)
		require.NoError(t, eventpubsub.Subscribe(eventpubsub.AlertUpEvent, func(a models.AlertUp) {
			alerts <- a
		}))

		session := newTestSession(t)
		w, _ := newTestWorker(t, session, &stubResolver{result: models.PriceResult{Price: 640, Provider: "manual"}})

		require.True(t, w.tick(ctx))
		eventpubsub.WaitAsync()

		alert := <-alerts
		assert.Equal(t, 640.0, alert.Price)
		assert.Equal(t, 637.0, alert.BreakevenUp)

		require.Equal(t, 1, session.History().Len())
		assert.Equal(t, 3.0, session.History().Snapshot()[0].ProfitUp)
	})

	t.Run("price below breakeven down raises AlertDown", func(t *testing.T) {
		eventpubsub.Init()

		alerts := make(chan models.AlertDown, 1)
		require.NoError(t, eventpubsub.Subscribe(eventpubsub.AlertDownEvent, func(a models.AlertDown) {
			alerts <- a
		}))

		session := newTestSession(t)
		w, _ := newTestWorker(t, session, &stubResolver{result: models.PriceResult{Price: 530, Provider: "manual"}})

		require.True(t, w.tick(ctx))
		eventpubsub.WaitAsync()

		alert := <-alerts
		assert.Equal(t, 530.0, alert.Price)
		assert.Equal(t, 538.0, alert.BreakevenDown)
		assert.Equal(t, 8.0, session.History().Snapshot()[0].ProfitDown)
	})

	t.Run("price between breakevens raises nothing", func(t *testing.T) {
		eventpubsub.Init()

		raised := make(chan struct{}, 2)
		require.NoError(t, eventpubsub.Subscribe(eventpubsub.AlertUpEvent, func(models.AlertUp) {
			raised <- struct{}{}
		}))
		require.NoError(t, eventpubsub.Subscribe(eventpubsub.AlertDownEvent, func(models.AlertDown) {
			raised <- struct{}{}
		}))

		session := newTestSession(t)
		w, _ := newTestWorker(t, session, &stubResolver{result: models.PriceResult{Price: 600, Provider: "manual"}})

		require.True(t, w.tick(ctx))
		eventpubsub.WaitAsync()

		assert.Empty(t, raised)
		assert.Equal(t, 1, session.History().Len())
	})

	t.Run("coinciding thresholds favor AlertUp", func(t *testing.T) {
		eventpubsub.Init()

		ups := make(chan models.AlertUp, 1)
		downs := make(chan models.AlertDown, 1)
		require.NoError(t, eventpubsub.Subscribe(eventpubsub.AlertUpEvent, func(a models.AlertUp) {
			ups <- a
		}))
		require.NoError(t, eventpubsub.Subscribe(eventpubsub.AlertDownEvent, func(a models.AlertDown) {
			downs <- a
		}))

		session := NewSessionContext()
		_, err := session.InitStrategy(models.NewStrategyConfig(600, 0, 0, 0))
		require.NoError(t, err)

		w, _ := newTestWorker(t, session, &stubResolver{result: models.PriceResult{Price: 600, Provider: "manual"}})

		require.True(t, w.tick(ctx))
		eventpubsub.WaitAsync()

		assert.Len(t, ups, 1)
		assert.Empty(t, downs)
	})

	t.Run("degraded price is still evaluated", func(t *testing.T) {
		eventpubsub.Init()

		session := newTestSession(t)
		w, _ := newTestWorker(t, session, &stubResolver{result: models.PriceResult{Price: 600, Provider: models.FallbackProviderName, Degraded: true}})

		require.True(t, w.tick(ctx))
		assert.Equal(t, 1, session.History().Len())
	})
}

func TestStartStop(t *testing.T) {
	t.Run("start runs an immediate tick and stop halts the loop", func(t *testing.T) {
		eventpubsub.Init()

		session := newTestSession(t)
		w, wg := newTestWorker(t, session, &stubResolver{result: models.PriceResult{Price: 600, Provider: "manual"}})

		require.NoError(t, w.Start(context.Background()))
		assert.Equal(t, models.MonitorStateRunning, session.State())

		require.Eventually(t, func() bool {
			return session.History().Len() == 1
		}, time.Second, 10*time.Millisecond)

		w.Stop()
		assert.Equal(t, models.MonitorStateStopped, session.State())

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker goroutine did not exit after Stop")
		}
	})

	t.Run("start while running is a no-op", func(t *testing.T) {
		eventpubsub.Init()

		session := newTestSession(t)
		w, _ := newTestWorker(t, session, &stubResolver{result: models.PriceResult{Price: 600, Provider: "manual"}})

		require.NoError(t, w.Start(context.Background()))
		require.NoError(t, w.Start(context.Background()))

		require.Eventually(t, func() bool {
			return session.History().Len() == 1
		}, time.Second, 10*time.Millisecond)

		// A second running loop would have produced a second immediate tick.
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, 1, session.History().Len())

		w.Stop()
	})

	t.Run("stop while stopped is a no-op", func(t *testing.T) {
		eventpubsub.Init()

		session := newTestSession(t)
		w, _ := newTestWorker(t, session, &stubResolver{result: models.PriceResult{Price: 600, Provider: "manual"}})

		assert.NotPanics(t, func() {
			w.Stop()
		})
	})

	t.Run("start without a strategy is rejected", func(t *testing.T) {
		eventpubsub.Init()

		session := NewSessionContext()
		w, _ := newTestWorker(t, session, &stubResolver{result: models.PriceResult{Price: 600, Provider: "manual"}})

		assert.ErrorIs(t, w.Start(context.Background()), models.NoStrategyErr)
		assert.Equal(t, models.MonitorStateStopped, session.State())
	})

	t.Run("tick failure stops the monitor instead of crashing", func(t *testing.T) {
		eventpubsub.Init()

		session := newTestSession(t)
		w, wg := newTestWorker(t, session, &panicResolver{})

		require.NoError(t, w.Start(context.Background()))

		require.Eventually(t, func() bool {
			return session.State() == models.MonitorStateStopped
		}, time.Second, 10*time.Millisecond)

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker goroutine did not exit after tick failure")
		}
	})
}
