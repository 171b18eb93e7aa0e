package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

/*
Conn wraps an S3-compatible object store connection scoped to a single
bucket.
*/
type Conn struct {
	client *minio.Client
	bucket string
}

/*
Config holds the connection settings for an S3-compatible endpoint.
*/
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

/*
NewConn connects to an S3-compatible endpoint and makes sure the configured
bucket exists.
*/
func NewConn(ctx context.Context, cfg Config) (*Conn, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to object store: %w", err)
	}

	conn := &Conn{client: client, bucket: cfg.Bucket}

	exists, err := client.BucketExists(ctx, cfg.Bucket)

	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}

	if !exists {
		if err := client.MakeBucket(
			ctx, cfg.Bucket, minio.MakeBucketOptions{},
		); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return conn, nil
}

func (conn *Conn) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := conn.client.GetObject(
		ctx, conn.bucket, key, minio.GetObjectOptions{},
	)

	if err != nil {
		return nil, err
	}

	defer obj.Close()

	buf := bytes.NewBuffer([]byte{})

	if _, err = io.Copy(buf, obj); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (conn *Conn) Put(ctx context.Context, key string, value []byte) error {
	_, err := conn.client.PutObject(
		ctx, conn.bucket, key,
		bytes.NewReader(value), int64(len(value)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)

	return err
}

func (conn *Conn) Delete(ctx context.Context, key string) error {
	return conn.client.RemoveObject(
		ctx, conn.bucket, key, minio.RemoveObjectOptions{},
	)
}
