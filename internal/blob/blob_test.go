package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/Popolzen/wishlists/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 - бакет в памяти с ответами как у S3
type fakeS3 struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	failWith     error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(data)),
		ContentType: aws.String(f.contentTypes[aws.ToString(in.Key)]),
	}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.contentTypes[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"s3":     &S3Store{client: newFakeS3(), bucket: "test"},
	}
}

func TestStore_PutGetDelete(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			key := uuid.New()

			_, err := store.Get(ctx, key)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Put(ctx, key, []byte("picture"), "image/png"))

			obj, err := store.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, []byte("picture"), obj.Data)
			assert.Equal(t, "image/png", obj.ContentType)

			require.NoError(t, store.Delete(ctx, key))
			require.NoError(t, store.Delete(ctx, key))

			_, err = store.Get(ctx, key)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestMemoryStore_CopiesData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := uuid.New()
	data := []byte("abc")

	require.NoError(t, store.Put(ctx, key, data, ""))
	data[0] = 'x'

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got.Data)
}

func TestS3Store_KeyAndContentType(t *testing.T) {
	fake := newFakeS3()
	store := &S3Store{client: fake, bucket: "test"}
	key := uuid.New()

	require.NoError(t, store.Put(context.Background(), key, []byte("x"), "image/jpeg"))

	assert.Contains(t, fake.objects, key.String())
	assert.Equal(t, "image/jpeg", fake.contentTypes[key.String()])
}

func TestS3Store_Errors(t *testing.T) {
	fake := newFakeS3()
	fake.failWith = errors.New("network down")
	store := &S3Store{client: fake, bucket: "test"}
	ctx := context.Background()

	_, err := store.Get(ctx, uuid.New())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.Error(t, store.Put(ctx, uuid.New(), []byte("x"), ""))
	assert.Error(t, store.Delete(ctx, uuid.New()))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.True(t, isNotFound(&smithy.GenericAPIError{Code: "NotFound"}))
	assert.False(t, isNotFound(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestNewS3Store(t *testing.T) {
	store, err := NewS3Store(context.Background(), config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		Bucket:          "pictures",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		ForcePathStyle:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, "pictures", store.bucket)
	assert.NotNil(t, store.client)
}
