package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/viper"

	"github.com/theapemachine/dispatch-go/pkg/chain"
	"github.com/theapemachine/dispatch-go/pkg/registry"
	"github.com/theapemachine/dispatch-go/pkg/schema"
	"github.com/theapemachine/dispatch-go/pkg/stores"
	"github.com/theapemachine/dispatch-go/pkg/stores/s3"
)

/*
newRegistry builds the built-in method registry: a couple of probe methods
plus handlers over the key/value store and the sync-state parser.
*/
func newRegistry(kv stores.KV) *registry.Registry {
	return registry.New().
		Register("ping", func(context.Context, ...any) (any, error) {
			return "pong", nil
		}).
		Register("add", func(_ context.Context, args ...any) (any, error) {
			a, aok := args[0].(float64)
			b, bok := args[1].(float64)

			if !aok || !bok {
				return nil, fmt.Errorf("add expects two numbers")
			}

			return a + b, nil
		}).
		Register("state.sync", func(_ context.Context, args ...any) (any, error) {
			return chain.ParseSyncStatus(args[0])
		}).
		Register("kv.put", func(ctx context.Context, args ...any) (any, error) {
			key, ok := args[0].(string)

			if !ok {
				return nil, fmt.Errorf("kv.put expects a string key")
			}

			value, err := json.Marshal(args[1])

			if err != nil {
				return nil, err
			}

			if err := kv.Set(ctx, key, value); err != nil {
				return nil, err
			}

			return true, nil
		}).
		Register("kv.get", func(ctx context.Context, args ...any) (any, error) {
			key, ok := args[0].(string)

			if !ok {
				return nil, fmt.Errorf("kv.get expects a string key")
			}

			value, err := kv.Get(ctx, key)

			if err != nil {
				return nil, err
			}

			var decoded any

			if err := json.Unmarshal(value, &decoded); err != nil {
				return nil, err
			}

			return decoded, nil
		})
}

/*
newValidator compiles the params schema for the built-in registry. Each
top-level property constrains one method's positional params.
*/
func newValidator() (*schema.Validator, error) {
	return schema.New([]byte(`{
		"type": "object",
		"properties": {
			"ping": {
				"type": "array",
				"maxItems": 0
			},
			"add": {
				"type": "array",
				"items": [{"type": "number"}, {"type": "number"}],
				"minItems": 2,
				"maxItems": 2
			},
			"state.sync": {
				"type": "array",
				"minItems": 1,
				"maxItems": 1
			},
			"kv.put": {
				"type": "array",
				"items": [{"type": "string"}, {}],
				"minItems": 2,
				"maxItems": 2
			},
			"kv.get": {
				"type": "array",
				"items": [{"type": "string"}],
				"minItems": 1,
				"maxItems": 1
			}
		}
	}`))
}

/*
newStore creates the key/value store the handlers run against, selected by
the store.backend config key: "memory" (default) or "s3".
*/
func newStore(ctx context.Context) (stores.KV, error) {
	if viper.GetString("store.backend") != "s3" {
		return stores.NewInMemoryKV(), nil
	}

	conn, err := s3.NewConn(ctx, s3.Config{
		Endpoint:  viper.GetString("store.s3.endpoint"),
		AccessKey: viper.GetString("store.s3.access_key"),
		SecretKey: viper.GetString("store.s3.secret_key"),
		Bucket:    viper.GetString("store.s3.bucket"),
		UseSSL:    viper.GetBool("store.s3.use_ssl"),
	})

	if err != nil {
		return nil, err
	}

	return s3.NewStore(conn), nil
}
