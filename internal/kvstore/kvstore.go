package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys used by the storefront. The store itself is key-agnostic.
const (
	AuthUserKey  = "auth-user"
	CartItemsKey = "cart-items"
)

var ErrNotFound = errors.New("key not found")

// Store is a durable string-keyed record store. Writes are last-writer-wins
// and atomic per key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

func GetJSON(ctx context.Context, s Store, key string, dst any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("kvstore: decode %q: %w", key, err)
	}
	return nil
}

func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore: encode %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
