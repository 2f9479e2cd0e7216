package session

import "context"

// Durable storage holds exactly two entries, written and cleared as a pair.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Storage is the durable backing for the session pair. Implementations must
// make Save atomic: a reader never observes a token without its user record
// or vice versa. Clear on empty storage is a no-op, not an error.
type Storage interface {
	Load(ctx context.Context) (token, user []byte, err error)
	Save(ctx context.Context, token, user []byte) error
	Clear(ctx context.Context) error
}
