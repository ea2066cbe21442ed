package dispatch

import (
	"sync"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

// queueItem is one scheduled delivery. Immutable once enqueued; ownership passes from the
// queue to the sender goroutine when it is popped.
type queueItem struct {
	destination string
	payload     string
}

// BufferedDispatcherConfig contains the parameters for NewBufferedDispatcher. The builder in
// epcomponents is responsible for filling in defaults; zero values here are adjusted to the
// standard defaults as a safety measure.
type BufferedDispatcherConfig struct {
	// BatchSize is the queue length that triggers an immediate flush.
	BatchSize int
	// FlushWait is how long after the most recent Schedule call a flush happens on its own.
	FlushWait time.Duration
	// Sender performs the outbound deliveries.
	Sender interfaces.EventSender
	// FailureHandler decides what happens to items whose delivery failed. If nil, they are
	// discarded.
	FailureHandler interfaces.DeliveryFailureHandler
	// Loggers is the SDK logging configuration.
	Loggers ldlog.Loggers
}

const (
	// DefaultBatchSize is used when BufferedDispatcherConfig.BatchSize is not positive.
	DefaultBatchSize = 10
	// DefaultFlushWait is used when BufferedDispatcherConfig.FlushWait is not positive.
	DefaultFlushWait = 2 * time.Second
)

// BufferedDispatcher is the standard implementation of interfaces.EventDispatcher.
//
// All mutations of the queue, the enabled flag, and the timer are serialized under one lock.
// Deliveries happen on a single sender goroutine that pops items outside the lock, so a slow
// or hanging delivery never blocks Schedule, EnableSending, or DisableSending. Flush triggers
// (batch size, timer, EnableSending, Flush) are coalesced through a capacity-1 signal channel:
// however many triggers fire, there is one drain pass, and a pass already in progress covers
// any trigger that arrives during it because it keeps draining until the queue is empty.
type BufferedDispatcher struct {
	lock      sync.Mutex
	queue     []queueItem
	enabled   bool
	timer     *time.Timer
	timerGen  int
	config    BufferedDispatcherConfig
	flushCh   chan struct{}
	closerCh  chan struct{}
	closeOnce sync.Once
}

// NewBufferedDispatcher creates a started BufferedDispatcher. Sending is initially enabled.
func NewBufferedDispatcher(config BufferedDispatcherConfig) *BufferedDispatcher {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.FlushWait <= 0 {
		config.FlushWait = DefaultFlushWait
	}
	d := &BufferedDispatcher{
		config:   config,
		enabled:  true,
		flushCh:  make(chan struct{}, 1),
		closerCh: make(chan struct{}),
	}
	go d.runSender()
	return d
}

// Schedule implements interfaces.EventDispatcher. It appends the item to the queue and then,
// if sending is enabled, either triggers an immediate flush (batch size reached) or re-arms
// the flush timer. While sending is disabled the item is appended and nothing else happens.
func (d *BufferedDispatcher) Schedule(destination string, payload string) {
	d.lock.Lock()
	d.queue = append(d.queue, queueItem{destination: destination, payload: payload})
	if !d.enabled {
		d.lock.Unlock()
		return
	}
	// >= rather than == because the queue may hold a backlog accumulated while disabled
	if len(d.queue) >= d.config.BatchSize {
		d.cancelTimerLocked()
		d.requestFlushLocked()
	} else {
		d.armTimerLocked()
	}
	d.lock.Unlock()
}

// EnableSending implements interfaces.EventDispatcher.
func (d *BufferedDispatcher) EnableSending() {
	d.lock.Lock()
	d.enabled = true
	if len(d.queue) > 0 {
		d.requestFlushLocked()
	}
	d.lock.Unlock()
}

// DisableSending implements interfaces.EventDispatcher.
func (d *BufferedDispatcher) DisableSending() {
	d.lock.Lock()
	d.enabled = false
	d.cancelTimerLocked()
	d.lock.Unlock()
}

// Flush implements interfaces.EventDispatcher.
func (d *BufferedDispatcher) Flush() {
	d.lock.Lock()
	d.cancelTimerLocked()
	if d.enabled && len(d.queue) > 0 {
		d.requestFlushLocked()
	}
	d.lock.Unlock()
}

// Close implements interfaces.EventDispatcher.
func (d *BufferedDispatcher) Close() error {
	d.closeOnce.Do(func() {
		d.lock.Lock()
		d.cancelTimerLocked()
		d.lock.Unlock()
		close(d.closerCh)
	})
	return nil
}

// armTimerLocked replaces any armed timer with a fresh one. At most one timer is outstanding;
// the generation counter invalidates fires from a timer that was cancelled after its callback
// had already started.
func (d *BufferedDispatcher) armTimerLocked() {
	d.cancelTimerLocked()
	gen := d.timerGen
	d.timer = time.AfterFunc(d.config.FlushWait, func() {
		d.timerFired(gen)
	})
}

func (d *BufferedDispatcher) cancelTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.timerGen++
}

func (d *BufferedDispatcher) timerFired(gen int) {
	d.lock.Lock()
	if gen != d.timerGen || !d.enabled {
		// stale fire, or sending was disabled after the timer was armed
		d.lock.Unlock()
		return
	}
	d.timer = nil
	d.requestFlushLocked()
	d.lock.Unlock()
}

func (d *BufferedDispatcher) requestFlushLocked() {
	select {
	case d.flushCh <- struct{}{}:
	default: // a flush is already pending; the drain pass will pick everything up
	}
}

func (d *BufferedDispatcher) runSender() {
	for {
		select {
		case <-d.closerCh:
			return
		case <-d.flushCh:
			d.drain()
		}
	}
}

// drain pops and delivers items in FIFO order until the queue is empty. The enabled flag is
// rechecked on every iteration, so a DisableSending call mid-drain stops delivery with the
// remaining items still queued. Items that a failure handler asks to requeue are held aside
// and appended after the pass ends, so a failing transport cannot spin the loop; the timer is
// re-armed for them so they are attempted again on a later flush.
func (d *BufferedDispatcher) drain() {
	var requeue []queueItem
	first := true
	for {
		d.lock.Lock()
		if first {
			d.cancelTimerLocked()
			first = false
		}
		if !d.enabled || len(d.queue) == 0 {
			d.finishDrainLocked(requeue)
			d.lock.Unlock()
			return
		}
		item := d.queue[0]
		d.queue = d.queue[1:]
		d.lock.Unlock()

		result := d.config.Sender.SendEventData(item.destination, item.payload)
		if result.Success {
			continue
		}
		if result.Err != nil {
			d.config.Loggers.Warnf("Delivery to %s failed: %s", item.destination, result.Err)
		} else {
			d.config.Loggers.Warnf("Delivery to %s was rejected", item.destination)
		}
		if d.config.FailureHandler != nil &&
			d.config.FailureHandler.HandleDeliveryFailure(item.destination, item.payload, result.Err) == interfaces.RequeueItem {
			requeue = append(requeue, item)
		}
	}
}

func (d *BufferedDispatcher) finishDrainLocked(requeue []queueItem) {
	if len(requeue) == 0 {
		return
	}
	d.queue = append(d.queue, requeue...)
	if d.enabled {
		d.armTimerLocked()
	}
}
