package drive

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func TestNewFileRecord(t *testing.T) {
	driveFile := &drive.File{
		Id:           "file123",
		Name:         "report.pdf",
		MimeType:     "application/pdf",
		ModifiedTime: "2023-01-02T15:30:00Z",
		Size:         1024,
		Description:  "Quarterly report",
		WebViewLink:  "https://drive.google.com/file/d/file123/view",
	}

	record := newFileRecord(driveFile)

	if record.ID != "file123" {
		t.Errorf("Expected ID file123, got %s", record.ID)
	}
	if record.Name != "report.pdf" {
		t.Errorf("Expected Name report.pdf, got %s", record.Name)
	}
	if record.MimeType != "application/pdf" {
		t.Errorf("Expected MimeType application/pdf, got %s", record.MimeType)
	}
	if record.ModifiedTime != "2023-01-02T15:30:00Z" {
		t.Errorf("Expected ModifiedTime 2023-01-02T15:30:00Z, got %s", record.ModifiedTime)
	}
	if record.Size != 1024 {
		t.Errorf("Expected Size 1024, got %d", record.Size)
	}
	if record.Description != "Quarterly report" {
		t.Errorf("Expected Description, got %s", record.Description)
	}
	if record.WebViewLink != "https://drive.google.com/file/d/file123/view" {
		t.Errorf("Expected WebViewLink, got %s", record.WebViewLink)
	}
}

func TestNewFileRecords_Empty(t *testing.T) {
	records := newFileRecords(nil)
	if len(records) != 0 {
		t.Errorf("Expected empty slice, got %d records", len(records))
	}
}

func TestNewClient_EmptyToken(t *testing.T) {
	_, err := NewClient(context.Background(), "  ")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Expected AuthError for empty token, got %v", err)
	}
}

// fakeTransport routes Drive API requests to canned responses so client
// behavior can be exercised without the remote service.
type fakeTransport struct {
	t      *testing.T
	handle func(req *http.Request) *http.Response
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return f.handle(req), nil
}

func newTestClient(t *testing.T, handle func(req *http.Request) *http.Response) *Client {
	t.Helper()
	httpClient := &http.Client{Transport: &fakeTransport{t: t, handle: handle}}
	service, err := drive.NewService(context.Background(), option.WithHTTPClient(httpClient))
	if err != nil {
		t.Fatalf("failed to create test Drive service: %v", err)
	}
	return newClientWithService(service)
}

func response(code int, contentType, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func jsonResponse(body string) *http.Response {
	return response(http.StatusOK, "application/json; charset=UTF-8", body)
}

// routeContent dispatches metadata, export and media requests for one file.
func routeContent(meta string, export, media func(req *http.Request) *http.Response) func(req *http.Request) *http.Response {
	return func(req *http.Request) *http.Response {
		switch {
		case strings.Contains(req.URL.Path, "/export"):
			return export(req)
		case req.URL.Query().Get("alt") == "media":
			return media(req)
		default:
			return jsonResponse(meta)
		}
	}
}

func TestGetContent_NativeDocumentDefaultExport(t *testing.T) {
	meta := `{"id":"doc1","name":"Design notes","mimeType":"application/vnd.google-apps.document"}`
	client := newTestClient(t, routeContent(meta,
		func(req *http.Request) *http.Response {
			if got := req.URL.Query().Get("mimeType"); got != "text/markdown" {
				t.Errorf("export mimeType = %q, want text/markdown", got)
			}
			return response(http.StatusOK, "text/markdown", "# Design notes")
		},
		func(req *http.Request) *http.Response {
			t.Error("unexpected media download for a native document")
			return response(http.StatusInternalServerError, "text/plain", "")
		},
	))

	result, err := client.GetContent(context.Background(), "doc1", "")
	if err != nil {
		t.Fatalf("GetContent() error: %v", err)
	}
	if result.FileName != "Design notes" {
		t.Errorf("FileName = %q, want Design notes", result.FileName)
	}
	if result.MimeType != DocumentMimeType {
		t.Errorf("MimeType = %q, want %q", result.MimeType, DocumentMimeType)
	}
	if !result.Text {
		t.Error("Expected decoded text content")
	}
	if string(result.Data) != "# Design notes" {
		t.Errorf("Data = %q, want exported markdown", result.Data)
	}
}

func TestGetContent_BinaryRejectedButDownloadable(t *testing.T) {
	meta := `{"id":"img1","name":"diagram.png","mimeType":"image/png"}`
	raw := "\x89PNG\r\n"
	client := newTestClient(t, routeContent(meta,
		func(req *http.Request) *http.Response {
			t.Error("unexpected export for a binary file")
			return response(http.StatusInternalServerError, "text/plain", "")
		},
		func(req *http.Request) *http.Response {
			return response(http.StatusOK, "image/png", raw)
		},
	))

	// get_content applies the type gate
	_, err := client.GetContent(context.Background(), "img1", "")
	var typeErr *UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("Expected UnsupportedTypeError, got %v", err)
	}
	if typeErr.FileID != "img1" {
		t.Errorf("FileID = %q, want img1", typeErr.FileID)
	}

	// download does not
	result, err := client.Download(context.Background(), "img1", "")
	if err != nil {
		t.Fatalf("Download() error: %v", err)
	}
	if result.Text {
		t.Error("PNG download must stay binary")
	}
	if string(result.Data) != raw {
		t.Errorf("Data mismatch: got %q", result.Data)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", result.MimeType)
	}
}

func TestDownload_NativeDocumentDefaultExport(t *testing.T) {
	meta := `{"id":"doc2","name":"Notes","mimeType":"application/vnd.google-apps.document"}`
	client := newTestClient(t, routeContent(meta,
		func(req *http.Request) *http.Response {
			if got := req.URL.Query().Get("mimeType"); got != "text/markdown" {
				t.Errorf("export mimeType = %q, want text/markdown", got)
			}
			return response(http.StatusOK, "text/markdown", "content")
		},
		func(req *http.Request) *http.Response {
			t.Error("unexpected media download for a native document")
			return response(http.StatusInternalServerError, "text/plain", "")
		},
	))

	result, err := client.Download(context.Background(), "doc2", "")
	if err != nil {
		t.Fatalf("Download() error: %v", err)
	}
	if !result.Text {
		t.Error("Markdown export should decode as text on download")
	}
	if string(result.Data) != "content" {
		t.Errorf("Data = %q, want content", result.Data)
	}
}

func TestGetDetails_NotFound(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) *http.Response {
		return response(http.StatusNotFound, "application/json",
			`{"error":{"code":404,"message":"File not found: missing"}}`)
	})

	_, err := client.GetDetails(context.Background(), "missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if notFound.FileID != "missing" {
		t.Errorf("FileID = %q, want missing", notFound.FileID)
	}
}

func TestSearch_QueryShaping(t *testing.T) {
	var gotQuery string
	var gotPageSize string
	client := newTestClient(t, func(req *http.Request) *http.Response {
		gotQuery = req.URL.Query().Get("q")
		gotPageSize = req.URL.Query().Get("pageSize")
		return jsonResponse(`{"files":[
			{"id":"f1","name":"a.txt","mimeType":"text/plain","modifiedTime":"2023-01-01T10:00:00Z","size":"12"},
			{"id":"f2","name":"b.txt","mimeType":"text/plain","modifiedTime":"2023-01-02T10:00:00Z","size":"34"}
		]}`)
	})

	records, err := client.Search(context.Background(), "John's report", 5)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if want := `fullText contains 'John\'s report'`; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
	if gotPageSize != "5" {
		t.Errorf("pageSize = %q, want 5", gotPageSize)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].ID != "f1" || records[1].ID != "f2" {
		t.Errorf("Record order not preserved: %v, %v", records[0].ID, records[1].ID)
	}
}

func TestList_FolderFilter(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(req *http.Request) *http.Response {
		gotQuery = req.URL.Query().Get("q")
		return jsonResponse(`{"files":[]}`)
	})

	if _, err := client.List(context.Background(), "folder42", 0); err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if want := "'folder42' in parents"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestDelete_Success(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) *http.Response {
		if req.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", req.Method)
		}
		return response(http.StatusNoContent, "application/json", "")
	})

	if err := client.Delete(context.Background(), "f1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
}

func TestUpload_MissingLocalFile(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) *http.Response {
		t.Error("no remote call expected when the local file is unreadable")
		return response(http.StatusInternalServerError, "text/plain", "")
	})

	_, err := client.Upload(context.Background(), "/nonexistent/path/file.txt", "")
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected IOError, got %v", err)
	}
	if !strings.Contains(ioErr.Error(), "/nonexistent/path/file.txt") {
		t.Errorf("IOError message should name the path: %v", ioErr)
	}
}

func TestSearch_RemoteFailure(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) *http.Response {
		return response(http.StatusInternalServerError, "application/json",
			`{"error":{"code":500,"message":"backend error"}}`)
	})

	_, err := client.Search(context.Background(), "anything", 10)
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("Expected RemoteError, got %v", err)
	}
	if remote.Op != "search" {
		t.Errorf("Op = %q, want search", remote.Op)
	}
}
