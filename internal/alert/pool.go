package alert

import (
	"context"
	"sync"

	"github.com/subuhana2303/vaanirakshak/internal/models"
)

// DeliverFunc hands one alert record to the transport (log, SMS gateway...).
type DeliverFunc func(ctx context.Context, rec *models.AlertRecord) error

// pool runs alert deliveries on background workers so emission never blocks
// the response flow.
type pool struct {
	numWorkers int
	records    chan *models.AlertRecord
	deliver    DeliverFunc
	wg         sync.WaitGroup
}

func newPool(numWorkers, bufferSize int, deliver DeliverFunc) *pool {
	return &pool{
		numWorkers: numWorkers,
		records:    make(chan *models.AlertRecord, bufferSize),
		deliver:    deliver,
	}
}

func (p *pool) Start(ctx context.Context) {
	for i := 1; i <= p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-p.records:
			if !ok {
				return
			}
			p.deliver(ctx, rec)
		}
	}
}

// TrySubmit enqueues a record without blocking. A full buffer counts as a
// transport failure and returns false.
func (p *pool) TrySubmit(rec *models.AlertRecord) bool {
	select {
	case p.records <- rec:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	close(p.records)
	p.wg.Wait()
}
