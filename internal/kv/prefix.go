package kv

import "context"

// Prefixed namespaces every key of an underlying store, so several players
// can share one database without seeing each other's USERNAME or scores.
type Prefixed struct {
	store  Store
	prefix string
}

// WithPrefix wraps store so that key k is stored as prefix+k.
func WithPrefix(store Store, prefix string) *Prefixed {
	return &Prefixed{store: store, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.store.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key, value string) error {
	return p.store.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Remove(ctx context.Context, key string) error {
	return p.store.Remove(ctx, p.prefix+key)
}

var _ Store = (*Prefixed)(nil)
