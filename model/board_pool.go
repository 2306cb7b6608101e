package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles generation boards so the per-tick allocation churn of
// long runs stays flat. Semantics are unchanged: a board handed out by Get
// is always empty.
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return NewBoard()
			},
		},
	}
}

// Get retrieves an empty board from the pool
func (p *BoardPool) Get() *Board {
	b := p.pool.Get().(*Board)
	if b.live == nil {
		b.live = make(map[Cell]struct{})
	}
	return b
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	// Clear the board before returning to pool
	b.Reset()
	p.pool.Put(b)
}
