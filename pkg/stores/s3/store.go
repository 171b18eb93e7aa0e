package s3

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/minio/minio-go/v7"

	"github.com/theapemachine/dispatch-go/pkg/stores"
)

/*
Store provides an S3 implementation of the stores.KV interface, for
deployments where handler state has to outlive the process.
*/
type Store struct {
	conn *Conn
}

/*
NewStore creates a new S3-backed key/value store with the given connection.
*/
func NewStore(conn *Conn) *Store {
	return &Store{conn: conn}
}

func (store *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := store.conn.Get(ctx, key)

	if err != nil {
		if isNoSuchKey(err) {
			return nil, stores.ErrNotFound
		}

		log.Error("failed to get value", "key", key, "error", err)

		return nil, err
	}

	return value, nil
}

func (store *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := store.conn.Put(ctx, key, value); err != nil {
		log.Error("failed to store value", "key", key, "error", err)
		return err
	}

	return nil
}

func (store *Store) Delete(ctx context.Context, key string) error {
	if err := store.conn.Delete(ctx, key); err != nil {
		log.Error("failed to delete value", "key", key, "error", err)
		return err
	}

	return nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
