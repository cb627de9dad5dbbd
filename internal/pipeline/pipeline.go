// Package pipeline wires the queue and the validator into a concurrent
// RFQ processing stage: producers submit parsed field maps, worker
// goroutines validate them, and consumers read back the outcomes.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/elamnapov/rfq-parser-app/internal/queue"
	"github.com/elamnapov/rfq-parser-app/internal/validation"
)

// Message is one RFQ's parsed key/value fields, tagged with an ID so
// outcomes can be correlated back to the request.
type Message struct {
	ID     string
	Fields map[string]string
}

// NewMessage wraps parsed fields in a Message with a fresh UUID.
func NewMessage(fields map[string]string) Message {
	return Message{
		ID:     uuid.NewString(),
		Fields: fields,
	}
}

// Outcome is the validation verdict for one message.
type Outcome struct {
	MessageID string
	Results   []validation.Result
	Valid     bool
}

// Processor runs a pool of workers that validate submitted messages.
// Submit and the outcome queue are safe for concurrent use; Start and
// Stop are not meant to be called concurrently with each other.
type Processor struct {
	validator *validation.Validator
	inbound   *queue.Bounded[Message]
	outcomes  *queue.Queue[Outcome]
	workers   int
	log       zerolog.Logger

	wg        sync.WaitGroup
	stopOnce  sync.Once
	started   bool
	processed atomic.Int64
	rejected  atomic.Int64
}

// NewProcessor creates a processor with the given worker count and
// inbound queue capacity. The inbound queue is bounded so that a slow
// validation stage pushes back on producers.
func NewProcessor(validator *validation.Validator, workers, queueSize int, log zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Processor{
		validator: validator,
		inbound:   queue.NewBounded[Message](queueSize),
		outcomes:  queue.New[Outcome](),
		workers:   workers,
		log:       log.With().Str("component", "pipeline").Logger(),
	}
}

// Start launches the worker pool. Workers drain the inbound queue until
// Stop is called or ctx is cancelled.
func (p *Processor) Start(ctx context.Context) {
	if p.started {
		return
	}
	p.started = true

	p.log.Info().Int("workers", p.workers).Int("queue_size", p.inbound.Cap()).
		Msg("starting RFQ validation pipeline")

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Submit enqueues a message for validation, blocking while the inbound
// queue is full. It fails once the processor has been stopped.
func (p *Processor) Submit(msg Message) error {
	if err := p.inbound.Push(msg); err != nil {
		return fmt.Errorf("submit message %s: %w", msg.ID, err)
	}
	return nil
}

// Outcomes returns the queue that validation verdicts are pushed to.
// Consumers pop from it; it is closed by Stop after the workers drain.
func (p *Processor) Outcomes() *queue.Queue[Outcome] {
	return p.outcomes
}

// Stop closes the inbound queue, waits for the workers to drain it, then
// closes the outcome queue. Idempotent.
func (p *Processor) Stop() {
	p.stopOnce.Do(func() {
		p.inbound.Close()
		p.wg.Wait()
		p.outcomes.Close()

		p.log.Info().
			Int64("processed", p.processed.Load()).
			Int64("rejected", p.rejected.Load()).
			Msg("pipeline stopped")
	})
}

// Processed returns the number of messages validated so far.
func (p *Processor) Processed() int64 {
	return p.processed.Load()
}

// Rejected returns the number of messages that failed validation.
func (p *Processor) Rejected() int64 {
	return p.rejected.Load()
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	log := p.log.With().Int("worker", id).Logger()
	for {
		msg, ok := p.inbound.PopContext(ctx)
		if !ok {
			return
		}

		results := p.validator.Validate(msg.Fields)
		valid := true
		for _, r := range results {
			if r.IsError() {
				valid = false
				break
			}
		}

		p.processed.Add(1)
		if !valid {
			p.rejected.Add(1)
			log.Debug().Str("message_id", msg.ID).Int("findings", len(results)).
				Msg("RFQ rejected")
		}

		if err := p.outcomes.Push(Outcome{
			MessageID: msg.ID,
			Results:   results,
			Valid:     valid,
		}); err != nil {
			log.Warn().Str("message_id", msg.ID).Err(err).
				Msg("outcome queue closed, dropping verdict")
			return
		}
	}
}
