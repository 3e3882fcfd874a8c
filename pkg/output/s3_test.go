package output

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/ppm"
)

type recordedRequest struct {
	method      string
	path        string
	contentType string
	body        []byte
}

func newFakeS3(t *testing.T, status int) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var mu sync.Mutex
	var requests []recordedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		})
		mu.Unlock()

		if status != http.StatusOK {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(status)
			io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func newTestUploader(t *testing.T, endpoint string) *S3Uploader {
	t.Helper()
	uploader, err := NewS3Uploader(S3Config{
		Bucket:    "renders",
		Region:    "us-east-1",
		Endpoint:  endpoint,
		AccessKey: "test-access",
		SecretKey: "test-secret",
	}, nil)
	if err != nil {
		t.Fatalf("NewS3Uploader failed: %v", err)
	}
	return uploader
}

func TestS3Uploader_Upload(t *testing.T) {
	server, requests := newFakeS3(t, http.StatusOK)
	uploader := newTestUploader(t, server.URL)

	img := ppm.SampleImage(3, 2)
	if err := uploader.Upload(context.Background(), "default/render.ppm", img); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	got := requests()
	if len(got) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(got))
	}
	req := got[0]
	if req.method != http.MethodPut {
		t.Errorf("Expected PUT, got %s", req.method)
	}
	if req.path != "/renders/default/render.ppm" {
		t.Errorf("Expected path-style object path, got %s", req.path)
	}
	if req.contentType != ContentType {
		t.Errorf("Expected content type %s, got %s", ContentType, req.contentType)
	}
	if !bytes.Equal(req.body, img.Bytes()) {
		t.Error("Expected uploaded body to match the P3 encoding")
	}
}

func TestS3Uploader_UploadError(t *testing.T) {
	server, _ := newFakeS3(t, http.StatusForbidden)
	uploader := newTestUploader(t, server.URL)

	if err := uploader.Upload(context.Background(), "render.ppm", ppm.SampleImage(2, 2)); err == nil {
		t.Error("Expected error when the bucket rejects the upload")
	}
}

func TestNewS3Uploader_RequiresBucket(t *testing.T) {
	if _, err := NewS3Uploader(S3Config{Region: "us-east-1"}, nil); err == nil {
		t.Error("Expected error without a bucket")
	}
}
