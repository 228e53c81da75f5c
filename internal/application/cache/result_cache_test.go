package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	"github.com/easayliu/yadisk-relay/internal/domain/entities"
)

func sampleResponse() *contracts.ListFilesResponse {
	return &contracts.ListFilesResponse{
		Files:        []entities.Resource{{Name: "a.jpg", MimeType: "image/jpeg"}},
		Count:        1,
		SelectedType: "image",
	}
}

func TestKeyIsDeterministic(t *testing.T) {
	t.Parallel()

	a := Key(contracts.ListFilesRequest{PublicKey: "https://yadi.sk/d/x", FileType: "image"}, 0)
	b := Key(contracts.ListFilesRequest{FileType: "image", PublicKey: "https://yadi.sk/d/x"}, 0)
	assert.Equal(t, a, b)
	assert.Equal(t, "file_type=image&public_key=https%3A%2F%2Fyadi.sk%2Fd%2Fx", a)
}

func TestKeyNormalizesFileType(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		Key(contracts.ListFilesRequest{PublicKey: "k"}, 0),
		Key(contracts.ListFilesRequest{PublicKey: "k", FileType: "all"}, 0))
	assert.NotEqual(t,
		Key(contracts.ListFilesRequest{PublicKey: "k", FileType: "image"}, 0),
		Key(contracts.ListFilesRequest{PublicKey: "k", FileType: "Image"}, 0))
	assert.NotEqual(t,
		Key(contracts.ListFilesRequest{PublicKey: "k"}, 0),
		Key(contracts.ListFilesRequest{PublicKey: "k"}, 50))
	assert.NotEqual(t,
		Key(contracts.ListFilesRequest{PublicKey: "k"}, 0),
		Key(contracts.ListFilesRequest{PublicKey: "k", Path: "/sub"}, 0))
}

func TestGetSet(t *testing.T) {
	t.Parallel()

	c := NewResultCache(time.Minute, true)
	t.Cleanup(c.Close)
	key := Key(contracts.ListFilesRequest{PublicKey: "k"}, 0)

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Set(key, sampleResponse())
	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, "a.jpg", got.Files[0].Name)

	// 调用方修改副本不影响缓存
	got.Count = 99
	again, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, 1, again.Count)
}

func TestEntriesExpire(t *testing.T) {
	t.Parallel()

	c := NewResultCache(50*time.Millisecond, true)
	t.Cleanup(c.Close)
	c.Set("k", sampleResponse())

	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(120 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	t.Parallel()

	c := NewResultCache(time.Minute, true)
	t.Cleanup(c.Close)
	c.Set("k", sampleResponse())
	c.Invalidate("k")

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestDisabledCache(t *testing.T) {
	t.Parallel()

	for _, c := range []*ResultCache{NewResultCache(time.Minute, false), NewResultCache(0, true), nil} {
		c.Set("k", sampleResponse())
		_, ok := c.Get("k")
		assert.False(t, ok)
		assert.False(t, c.Enabled())
		c.Close()
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	c := NewResultCache(time.Minute, true)
	t.Cleanup(c.Close)
	c.Set("k", sampleResponse())
	c.Close()

	_, ok := c.Get("k")
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		c.Set("k", sampleResponse())
		c.Invalidate("k")
		c.Close()
	})
	assert.False(t, c.Enabled())
}
