package repository

import "context"

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Page is limit/offset pagination for list queries.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page into the accepted range.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// TxManager runs fn inside a single storage transaction carried by ctx.
// Repositories called with that ctx join the transaction. fn's error rolls
// everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
