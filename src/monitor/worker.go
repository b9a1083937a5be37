package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dongqixiaoquan-sketch/gold/src/eventpubsub"
	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

const (
	MinInterval  = 30 * time.Second
	MaxInterval  = 300 * time.Second
	IntervalStep = 30 * time.Second
)

// ValidateInterval enforces the operator-facing contract: intervals run from
// 30s to 300s in steps of 30s.
func ValidateInterval(interval time.Duration) error {
	if interval < MinInterval || interval > MaxInterval || interval%IntervalStep != 0 {
		return fmt.Errorf("ValidateInterval: found %v: %w", interval, models.InvalidIntervalErr)
	}

	return nil
}

// PriceResolver yields one usable price per call. pricefeed.Chain is the
// production implementation.
type PriceResolver interface {
	Resolve(ctx context.Context) models.PriceResult
}

// MonitorWorker drives the polling loop: resolve a price, evaluate the
// strategy, append to history, raise breach alerts, then wait out the full
// interval. Ticks are strictly sequential and never overlap.
type MonitorWorker struct {
	wg       *sync.WaitGroup
	session  *SessionContext
	source   PriceResolver
	interval time.Duration
	mu       sync.Mutex
	cancel   context.CancelFunc
}

func NewMonitorWorkerClient(wg *sync.WaitGroup, session *SessionContext, source PriceResolver, interval time.Duration) (*MonitorWorker, error) {
	if err := ValidateInterval(interval); err != nil {
		return nil, fmt.Errorf("NewMonitorWorkerClient: %w", err)
	}

	return &MonitorWorker{
		wg:       wg,
		session:  session,
		source:   source,
		interval: interval,
	}, nil
}

// Start moves the session to running and spawns the polling goroutine. A
// second Start while running is a no-op.
func (w *MonitorWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.session.State() == models.MonitorStateRunning {
		log.Info("MonitorWorker.Start: already running")
		return nil
	}

	if w.session.Strategy() == nil {
		return fmt.Errorf("MonitorWorker.Start: %w", models.NoStrategyErr)
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.session.setState(models.MonitorStateRunning)

	w.wg.Add(1)
	go w.run(ctx)

	log.Infof("monitoring started with interval %v", w.interval)
	return nil
}

// Stop moves the session to stopped. An in-flight tick completes; the
// cancellation is honored at the next scheduling decision. Stop while
// already stopped is a no-op.
func (w *MonitorWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.session.State() == models.MonitorStateStopped {
		log.Info("MonitorWorker.Stop: already stopped")
		return
	}

	w.cancel()
	w.session.setState(models.MonitorStateStopped)
	eventpubsub.Publish("MonitorWorker", eventpubsub.MonitorStoppedEvent, models.MonitorStateStopped)

	log.Info("monitoring stopped")
}

func (w *MonitorWorker) run(ctx context.Context) {
	defer w.wg.Done()

	timer := time.NewTimer(w.interval)
	defer timer.Stop()

	for {
		if !w.tick(ctx) {
			return
		}

		select {
		case <-ctx.Done():
			w.session.setState(models.MonitorStateStopped)
			log.Info("stopping monitor worker")
			return
		case <-timer.C:
			timer.Reset(w.interval)
		}
	}
}

// tick runs one monitoring cycle. Any unexpected failure is recovered here,
// reported, and stops the monitor instead of crashing the process.
func (w *MonitorWorker) tick(ctx context.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			eventpubsub.PublishEventError("MonitorWorker.tick", fmt.Errorf("unexpected tick failure: %v", r))
			w.Stop()
			ok = false
		}
	}()

	result := w.source.Resolve(ctx)
	if result.Degraded {
		log.Warnf("MonitorWorker.tick: evaluating against degraded price %.2f", result.Price)
	}

	strat := w.session.Strategy()
	snapshot := strat.Evaluate(result.Price, time.Now())

	w.session.History().Append(snapshot)
	eventpubsub.Publish("MonitorWorker", eventpubsub.NewSnapshotEvent, snapshot)

	thresholds := strat.Thresholds()
	if snapshot.CurrentPrice >= thresholds.BreakevenUp {
		alert := models.NewAlertUp(snapshot.CurrentPrice, thresholds.BreakevenUp, snapshot.Timestamp)
		log.Warnf("price %.2f reached the upside breakeven %.2f: close the platform-B buy leg", alert.Price, alert.BreakevenUp)
		eventpubsub.Publish("MonitorWorker", eventpubsub.AlertUpEvent, alert)
	} else if snapshot.CurrentPrice <= thresholds.BreakevenDown {
		alert := models.NewAlertDown(snapshot.CurrentPrice, thresholds.BreakevenDown, snapshot.Timestamp)
		log.Warnf("price %.2f reached the downside breakeven %.2f: close the platform-A sell leg", alert.Price, alert.BreakevenDown)
		eventpubsub.Publish("MonitorWorker", eventpubsub.AlertDownEvent, alert)
	}

	return true
}
