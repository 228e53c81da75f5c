package services

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	serviceerrors "github.com/easayliu/yadisk-relay/internal/shared/errors"
	"github.com/easayliu/yadisk-relay/pkg/httpclient"
)

// newFileServer 按路径返回固定内容，/fail 返回500
func newFileServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		switch r.URL.Path {
		case "/one":
			w.Header().Set("Content-Type", "text/plain")
			_, _ = io.WriteString(w, "1")
		case "/two":
			_, _ = io.WriteString(w, "2")
		case "/echo":
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = io.WriteString(w, r.URL.RawQuery)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func archiveURL(base, path, filename string) string {
	return base + path + "?uid=0&filename=" + url.PathEscape(filename) + "&disposition=attachment"
}

func readZip(t *testing.T, data []byte) ([]string, map[string]string) {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	contents := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		names = append(names, f.Name)
		contents[f.Name] = string(body)
	}
	return names, contents
}

func TestFetchFile(t *testing.T) {
	t.Parallel()

	server := newFileServer(t, nil)
	svc := NewAppDownloadService(server.Client(), nil)

	payload, err := svc.FetchFile(context.Background(), contracts.DownloadRequest{
		BaseURL:  server.URL + "/echo",
		Params:   map[string]string{"hash": "abc", "disposition": "attachment"},
		Filename: "report.pdf",
	})
	require.NoError(t, err)
	defer payload.Body.Close()

	body, err := io.ReadAll(payload.Body)
	require.NoError(t, err)

	assert.Equal(t, "report.pdf", payload.Filename)
	assert.Equal(t, "application/pdf", payload.ContentType)
	assert.Equal(t, "disposition=attachment&hash=abc", string(body))
}

func TestFetchFileDefaultsContentType(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte{0x00, 0x01})
	}))
	t.Cleanup(server.Close)

	svc := NewAppDownloadService(server.Client(), nil)
	payload, err := svc.FetchFile(context.Background(), contracts.DownloadRequest{BaseURL: server.URL, Filename: "blob"})
	require.NoError(t, err)
	defer payload.Body.Close()

	assert.Equal(t, "application/octet-stream", payload.ContentType)
}

func TestFetchFileUpstreamFailure(t *testing.T) {
	t.Parallel()

	server := newFileServer(t, nil)
	svc := NewAppDownloadService(server.Client(), nil)

	payload, err := svc.FetchFile(context.Background(), contracts.DownloadRequest{BaseURL: server.URL + "/fail", Filename: "x"})
	assert.Nil(t, payload)

	var serviceErr *serviceerrors.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, serviceerrors.ErrorCodeRemoteFetchFailed, serviceErr.Code)
	assert.Equal(t, http.StatusInternalServerError, serviceErr.Details["status"])
}

func TestFetchFileValidatesInput(t *testing.T) {
	t.Parallel()

	svc := NewAppDownloadService(nil, nil)

	_, err := svc.FetchFile(context.Background(), contracts.DownloadRequest{BaseURL: "https://example.com/f"})
	assert.True(t, serviceerrors.IsCode(err, serviceerrors.ErrorCodeInvalidRequest))

	_, err = svc.FetchFile(context.Background(), contracts.DownloadRequest{BaseURL: "not a url", Filename: "f"})
	assert.True(t, serviceerrors.IsCode(err, serviceerrors.ErrorCodeInvalidRequest))
}

func TestBuildArchiveKeepsOrder(t *testing.T) {
	t.Parallel()

	server := newFileServer(t, nil)
	svc := NewAppDownloadService(server.Client(), nil)

	payload, err := svc.BuildArchive(context.Background(), contracts.ArchiveRequest{Items: []contracts.ArchiveItem{
		{URL: archiveURL(server.URL, "/one", "one.txt")},
		{URL: archiveURL(server.URL, "/two", "two.txt")},
	}})
	require.NoError(t, err)

	assert.Equal(t, "files.zip", payload.Filename)
	assert.Equal(t, "application/zip", payload.ContentType)
	assert.Equal(t, []string{"one.txt", "two.txt"}, payload.Entries)

	names, contents := readZip(t, payload.Data)
	assert.Equal(t, []string{"one.txt", "two.txt"}, names)
	assert.Equal(t, map[string]string{"one.txt": "1", "two.txt": "2"}, contents)
}

func TestBuildArchiveExplicitNames(t *testing.T) {
	t.Parallel()

	server := newFileServer(t, nil)
	svc := NewAppDownloadService(server.Client(), nil)

	payload, err := svc.BuildArchive(context.Background(), contracts.ArchiveRequest{Items: []contracts.ArchiveItem{
		{URL: server.URL + "/two", Filename: "фото.jpg"},
	}})
	require.NoError(t, err)

	names, contents := readZip(t, payload.Data)
	assert.Equal(t, []string{"фото.jpg"}, names)
	assert.Equal(t, "2", contents["фото.jpg"])
}

func TestBuildArchiveAbortsOnFailure(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := newFileServer(t, &hits)
	svc := NewAppDownloadService(server.Client(), nil)

	payload, err := svc.BuildArchive(context.Background(), contracts.ArchiveRequest{Items: []contracts.ArchiveItem{
		{URL: archiveURL(server.URL, "/one", "one.txt")},
		{URL: archiveURL(server.URL, "/fail", "two.txt")},
		{URL: archiveURL(server.URL, "/two", "three.txt")},
	}})

	assert.Nil(t, payload)
	assert.True(t, serviceerrors.IsCode(err, serviceerrors.ErrorCodeRemoteFetchFailed))
	assert.Equal(t, int32(2), hits.Load())
}

func TestBuildArchiveMalformedURLFailsBeforeFetching(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := newFileServer(t, &hits)
	svc := NewAppDownloadService(server.Client(), nil)

	_, err := svc.BuildArchive(context.Background(), contracts.ArchiveRequest{Items: []contracts.ArchiveItem{
		{URL: archiveURL(server.URL, "/one", "one.txt")},
		{URL: server.URL + "/two"},
	}})

	assert.True(t, serviceerrors.IsCode(err, serviceerrors.ErrorCodeArchiveURLMalformed))
	assert.Zero(t, hits.Load())
}

func TestBuildArchiveEmpty(t *testing.T) {
	t.Parallel()

	svc := NewAppDownloadService(nil, nil)
	_, err := svc.BuildArchive(context.Background(), contracts.ArchiveRequest{})
	assert.True(t, serviceerrors.IsCode(err, serviceerrors.ErrorCodeInvalidRequest))
}

func TestBuildArchiveHonoursCancellation(t *testing.T) {
	t.Parallel()

	server := newFileServer(t, nil)
	svc := NewAppDownloadService(server.Client(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.BuildArchive(ctx, contracts.ArchiveRequest{Items: []contracts.ArchiveItem{
		{URL: archiveURL(server.URL, "/one", "one.txt")},
	}})
	assert.True(t, serviceerrors.IsCode(err, serviceerrors.ErrorCodeRemoteFetchFailed))
}

// newSlowServer 立即返回响应头，随后每隔interval写出一个字节
func newSlowServer(t *testing.T, body string, interval time.Duration) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		flusher, _ := w.(http.Flusher)
		for i := range len(body) {
			_, _ = io.WriteString(w, body[i:i+1])
			if flusher != nil {
				flusher.Flush()
			}
			time.Sleep(interval)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchFileStreamsPastHeaderTimeout(t *testing.T) {
	t.Parallel()

	server := newSlowServer(t, "abcde", 100*time.Millisecond)
	svc := NewAppDownloadService(httpclient.NewStreamingClient(250*time.Millisecond, "test"), nil)

	payload, err := svc.FetchFile(context.Background(), contracts.DownloadRequest{
		BaseURL:  server.URL + "/movie",
		Filename: "movie.mp4",
	})
	require.NoError(t, err)
	defer payload.Body.Close()

	body, err := io.ReadAll(payload.Body)
	require.NoError(t, err)
	assert.Equal(t, "abcde", string(body))
	assert.Equal(t, int64(5), payload.ContentLength)
}

func TestBuildArchiveStreamsPastHeaderTimeout(t *testing.T) {
	t.Parallel()

	server := newSlowServer(t, "abcde", 100*time.Millisecond)
	svc := NewAppDownloadService(httpclient.NewStreamingClient(250*time.Millisecond, "test"), nil)

	payload, err := svc.BuildArchive(context.Background(), contracts.ArchiveRequest{Items: []contracts.ArchiveItem{
		{URL: archiveURL(server.URL, "/movie", "movie.mp4")},
	}})
	require.NoError(t, err)

	names, contents := readZip(t, payload.Data)
	assert.Equal(t, []string{"movie.mp4"}, names)
	assert.Equal(t, "abcde", contents["movie.mp4"])
}

func TestStreamingClientLimitsHeaderWait(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	svc := NewAppDownloadService(httpclient.NewStreamingClient(50*time.Millisecond, "test"), nil)
	_, err := svc.FetchFile(context.Background(), contracts.DownloadRequest{
		BaseURL:  server.URL + "/stuck",
		Filename: "stuck.bin",
	})
	assert.True(t, serviceerrors.IsCode(err, serviceerrors.ErrorCodeRemoteFetchFailed))
}
