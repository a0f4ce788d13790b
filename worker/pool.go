// Package worker drives asynchronous operations on a fixed set of goroutines.
//
// A blocking operation is launched with Go; once it returns, the completion
// handler it produced is queued and later run by one of the goroutines
// executing Run. Run returns once there is no queued handler and no
// operation in flight, the same way an I/O loop runs out of work.
package worker

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Pool is a completion queue shared by every session of a server.
type Pool struct {
	mu   sync.Mutex
	cond *sync.Cond

	queue []func()
	// outstanding counts queued handlers plus operations still in flight.
	outstanding int
}

func NewPool() *Pool {
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Post queues fn to be run by a worker.
func (p *Pool) Post(fn func()) {
	p.mu.Lock()
	p.outstanding++
	p.queue = append(p.queue, fn)
	p.mu.Unlock()
	p.cond.Signal()
}

// Go runs the blocking operation op on its own goroutine and queues the
// completion handler op returns. A nil handler completes the operation
// without queueing anything.
func (p *Pool) Go(op func() func()) {
	p.mu.Lock()
	p.outstanding++
	p.mu.Unlock()

	go func() {
		handler := op()

		p.mu.Lock()
		if handler == nil {
			p.outstanding--
			idle := p.outstanding == 0
			p.mu.Unlock()
			if idle {
				p.cond.Broadcast()
			}
			return
		}
		p.queue = append(p.queue, handler)
		p.mu.Unlock()
		p.cond.Signal()
	}()
}

// Outstanding returns the number of queued handlers and operations in flight.
func (p *Pool) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outstanding
}

// Run executes queued handlers on n goroutines and blocks until all of them
// run out of work. If ctx is cancelled, workers stop picking up handlers and
// Run returns the context's error.
func (p *Pool) Run(ctx context.Context, n int) error {
	if n < 1 {
		return errors.Errorf("worker pool needs at least one worker, got %d", n)
	}

	stop := context.AfterFunc(ctx, func() {
		p.mu.Lock()
		p.cond.Broadcast()
		p.mu.Unlock()
	})
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return p.work(gctx)
		})
	}
	return g.Wait()
}

func (p *Pool) work(ctx context.Context) error {
	for {
		fn, err := p.next(ctx)
		if fn == nil {
			return err
		}
		p.run(fn)
		p.done()
	}
}

// next blocks until a handler is queued. It returns nil once no work is left or ctx is done.
func (p *Pool) next(ctx context.Context) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(p.queue) > 0 {
			break
		}
		if p.outstanding == 0 {
			return nil, nil
		}
		p.cond.Wait()
	}
	fn := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return fn, nil
}

func (p *Pool) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("completion handler panicked")
		}
	}()
	fn()
}

func (p *Pool) done() {
	p.mu.Lock()
	p.outstanding--
	idle := p.outstanding == 0
	p.mu.Unlock()
	if idle {
		p.cond.Broadcast()
	}
}
