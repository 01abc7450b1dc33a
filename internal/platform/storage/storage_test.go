// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/platform/storage"
)

/*
TestLocal_Lifecycle writes, reads and deletes a file on disk.
*/
func TestLocal_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocal(t.TempDir(), "/media/")
	require.NoError(t, err)

	object, err := store.Put(ctx, "documents/2024/05/a.pdf", strings.NewReader("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "documents/2024/05/a.pdf", object.Key)
	assert.Equal(t, "/media/documents/2024/05/a.pdf", object.URL)
	assert.EqualValues(t, 8, object.Size)

	reader, err := store.Open(ctx, object.Key)
	require.NoError(t, err)
	content, err := io.ReadAll(reader)
	require.NoError(t, reader.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))

	require.NoError(t, store.Delete(ctx, object.Key))
	require.NoError(t, store.Delete(ctx, object.Key), "deleting twice is not an error")

	_, err = store.Open(ctx, object.Key)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

/*
TestLocal_RejectsTraversal refuses keys escaping the root.
*/
func TestLocal_RejectsTraversal(t *testing.T) {
	store, err := storage.NewLocal(t.TempDir(), "/media")
	require.NoError(t, err)

	for _, key := range []string{"", "/etc/passwd", "../secret", "goods/../../x"} {
		_, err := store.Put(context.Background(), key, strings.NewReader("x"), "")
		assert.Error(t, err, key)
	}
}

/*
TestKeys checks the date-partitioned key layout.
*/
func TestKeys(t *testing.T) {
	now := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)

	document := storage.DocumentKey(now)
	assert.Regexp(t, `^documents/2024/03/[0-9a-f-]{36}\.pdf$`, document)

	image := storage.ImageKey(now, `C:\Users\me\Ýük Surat.PNG`)
	assert.Regexp(t, `^goods/2024/03/yuk-surat_[0-9a-f]{8}_resized\.jpg$`, image)

	assert.Regexp(t, `^goods/2024/03/image_`, storage.ImageKey(now, "№.jpg"))
	assert.NotEqual(t, storage.ImageKey(now, "a.jpg"), storage.ImageKey(now, "a.jpg"))
}

// fakeBucket answers the subset of the S3 REST API the driver uses.
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (bucket *fakeBucket) RoundTrip(request *http.Request) (*http.Response, error) {
	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	key := strings.TrimPrefix(request.URL.Path, "/cases/")
	respond := func(status int, body []byte) *http.Response {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{},
			Body:       io.NopCloser(bytes.NewReader(body)),
			Request:    request,
		}
	}

	switch request.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(request.Body)
		bucket.objects[key] = body
		return respond(http.StatusOK, nil), nil
	case http.MethodGet:
		body, found := bucket.objects[key]
		if !found {
			return respond(http.StatusNotFound, []byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)), nil
		}
		return respond(http.StatusOK, body), nil
	case http.MethodDelete:
		delete(bucket.objects, key)
		return respond(http.StatusNoContent, nil), nil
	}
	return respond(http.StatusNotImplemented, nil), nil
}

/*
TestS3_Lifecycle drives the S3 driver against an in-memory bucket.
*/
func TestS3_Lifecycle(t *testing.T) {
	ctx := context.Background()
	bucket := &fakeBucket{objects: map[string][]byte{}}

	store, err := storage.NewS3(ctx, storage.S3Config{
		Bucket:          "cases",
		Region:          "eu-central-1",
		Endpoint:        "https://minio.local",
		PathStyle:       true,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
	}, func(options *s3.Options) {
		options.HTTPClient = &http.Client{Transport: bucket}
		options.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})
	require.NoError(t, err)

	object, err := store.Put(ctx, "goods/2024/03/x_resized.jpg", strings.NewReader("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/cases/goods/2024/03/x_resized.jpg", object.URL)
	assert.Equal(t, []byte("jpeg"), bucket.objects["goods/2024/03/x_resized.jpg"])

	reader, err := store.Open(ctx, object.Key)
	require.NoError(t, err)
	content, _ := io.ReadAll(reader)
	_ = reader.Close()
	assert.Equal(t, "jpeg", string(content))

	require.NoError(t, store.Delete(ctx, object.Key))
	assert.Empty(t, bucket.objects)

	_, err = store.Open(ctx, object.Key)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
