package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/geopoint/internal/core/ports"
	"github.com/99minutos/geopoint/internal/metrics"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes location reports to a fixed set of workers, hashing on
// the device ID so that reports from one device are processed in order.
type Dispatcher struct {
	workers []chan ports.ReportInput
	service ports.ReportService
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ReportService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ReportInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReportInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. ctx is passed to every Process call;
// workers exit once Shutdown has closed their channel and it is drained, or
// when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a report to the worker owning its device. It blocks once
// that worker's buffer is full. Reports enqueued after Shutdown are dropped.
func (d *Dispatcher) Enqueue(in ports.ReportInput) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn().Str("device", in.DeviceID).Msg("dispatcher stopped, report dropped")
		return
	}
	idx := d.shardIndex(in.DeviceID)
	d.workers[idx] <- in
	metrics.ReportsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// Shutdown stops accepting reports and waits until every buffered report has
// been processed. It returns ctx.Err() if ctx ends first.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// EnqueueBatch enqueues reports in slice order.
func (d *Dispatcher) EnqueueBatch(reports []ports.ReportInput) {
	for _, r := range reports {
		d.Enqueue(r)
	}
}

func (d *Dispatcher) shardIndex(deviceID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(deviceID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReportInput) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			metrics.ReportsQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.service.Process(ctx, in); err != nil {
				d.log.Error().Err(err).
					Str("device", in.DeviceID).
					Int("worker_id", id).
					Msg("report processing failed")
			}
		}
	}
}
