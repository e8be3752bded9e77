package roster

import "context"

type StoreAPI interface {
	Add(ctx context.Context, rec Record) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Count(ctx context.Context) (int, error)
}
