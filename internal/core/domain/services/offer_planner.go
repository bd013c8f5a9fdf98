package services

import (
	"math/rand/v2"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OfferPlanner is a domain service that plans one distribution cycle:
// which orders are considered in which sequence, and which courier each
// order is offered to.
//
// Key properties:
//   - Orders and couriers are processed in randomized order every cycle,
//     so no order or courier is systematically preferred.
//   - A courier handed an offer is unavailable to later orders in the same
//     cycle, unless the pool is exhausted and resets.
//   - Pure planning: the planner never touches the store.
//
// Example usage:
//
//	planner := services.NewOfferPlanner()
//	queue := planner.NewCourierQueue(activeCouriers)
//	for _, o := range planner.ShuffleOrders(readyOrders) {
//	    c := queue.Take(alreadyOfferedTo[o.ID()])
//	    if c == nil {
//	        continue // every eligible courier already saw this order
//	    }
//	    // persist a pending offer of o to c
//	}
type OfferPlanner struct {
	rng *rand.Rand
}

// NewOfferPlanner creates a planner seeded from the current time.
func NewOfferPlanner() OfferPlanner {
	now := uint64(time.Now().UnixNano())
	return OfferPlanner{rng: rand.New(rand.NewPCG(now, now>>32))}
}

// NewOfferPlannerWithSeed creates a deterministically seeded planner.
// Intended for tests that need reproducible shuffles.
func NewOfferPlannerWithSeed(seed1, seed2 uint64) OfferPlanner {
	return OfferPlanner{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// ShuffleOrders returns a randomized copy of orders. The input slice is not
// modified.
func (p OfferPlanner) ShuffleOrders(orders []*order.Order) []*order.Order {
	shuffled := make([]*order.Order, len(orders))
	copy(shuffled, orders)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// NewCourierQueue builds the cycle-scoped availability queue from the given
// roster. The queue starts in randomized order; the roster is retained so an
// exhausted queue can reset within the cycle.
func (p OfferPlanner) NewCourierQueue(couriers []*courier.Courier) *CourierQueue {
	q := &CourierQueue{
		roster: make([]*courier.Courier, len(couriers)),
		rng:    p.rng,
	}
	copy(q.roster, couriers)
	q.reset()
	return q
}

// CourierQueue is the availability queue for one distribution cycle.
// It is a value-scoped plan: built fresh inside each cycle, never persisted
// between cycles, and not safe for concurrent use.
type CourierQueue struct {
	roster []*courier.Courier
	queue  []*courier.Courier
	rng    *rand.Rand
}

// reset refills the queue with the full roster in fresh random order.
func (q *CourierQueue) reset() {
	q.queue = make([]*courier.Courier, len(q.roster))
	copy(q.queue, q.roster)
	q.rng.Shuffle(len(q.queue), func(i, j int) {
		q.queue[i], q.queue[j] = q.queue[j], q.queue[i]
	})
}

// Len returns the number of couriers still available in this cycle.
func (q *CourierQueue) Len() int {
	return len(q.queue)
}

// Take removes and returns the first queued courier whose ID is not in
// excluded. The first eligible courier wins; no secondary ranking is
// applied.
//
// When the queue has been fully consumed by earlier orders, the pool resets
// to the whole roster so the remaining orders can still be offered. When the
// queue is non-empty but every queued courier is excluded, Take returns nil
// and the order is skipped this cycle.
func (q *CourierQueue) Take(excluded map[kernel.UUID]bool) *courier.Courier {
	if len(q.queue) == 0 && len(q.roster) > 0 {
		q.reset()
	}

	for i, c := range q.queue {
		if excluded[c.ID()] {
			continue
		}
		q.queue = append(q.queue[:i], q.queue[i+1:]...)
		return c
	}

	return nil
}
