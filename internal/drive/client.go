package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdmime "mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DefaultPageSize is used for search and list when no page size is given.
const DefaultPageSize = 10

// Client wraps the Google Drive API service behind typed operations.
// A Client is built once from an access token and reused read-only across
// calls; it holds no other state.
type Client struct {
	service *drive.Service
}

// NewClient creates a Drive client from a raw OAuth 2.0 access token.
// Token acquisition and refresh are the caller's concern; the token is used
// as-is via a static token source.
func NewClient(ctx context.Context, accessToken string) (*Client, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, &AuthError{Reason: "access token is empty"}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	service, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, &AuthError{Reason: "failed to create Drive service", Err: err}
	}

	return &Client{service: service}, nil
}

// newClientWithService builds a Client around an existing Drive service.
// Used by tests to inject a service backed by a fake HTTP transport.
func newClientWithService(service *drive.Service) *Client {
	return &Client{service: service}
}

// Search performs a full-text search and returns up to pageSize records in
// remote relevance order.
func (c *Client) Search(ctx context.Context, query string, pageSize int64) ([]*FileRecord, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	// Single quotes terminate a Drive query string literal
	escaped := strings.ReplaceAll(query, "'", `\'`)
	q := fmt.Sprintf("fullText contains '%s'", escaped)

	result, err := c.service.Files.List().
		Context(ctx).
		Q(q).
		PageSize(pageSize).
		Fields("files(id, name, mimeType, modifiedTime, size)").
		Do()
	if err != nil {
		return nil, wrapAPIError("search", "", err)
	}

	return newFileRecords(result.Files), nil
}

// List returns up to pageSize records, optionally restricted to the children
// of folderID.
func (c *Client) List(ctx context.Context, folderID string, pageSize int64) ([]*FileRecord, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	call := c.service.Files.List().
		Context(ctx).
		PageSize(pageSize).
		Fields("files(id, name, mimeType, modifiedTime, size)")

	if folderID != "" {
		call = call.Q(fmt.Sprintf("'%s' in parents", folderID))
	}

	result, err := call.Do()
	if err != nil {
		return nil, wrapAPIError("list", "", err)
	}

	return newFileRecords(result.Files), nil
}

// GetDetails retrieves the full metadata record for a single file,
// including description and view link.
func (c *Client) GetDetails(ctx context.Context, fileID string) (*FileRecord, error) {
	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields("id, name, mimeType, modifiedTime, size, description, webViewLink").
		Do()
	if err != nil {
		return nil, wrapAPIError("get_details", fileID, err)
	}

	return newFileRecord(file), nil
}

// GetContent retrieves the content of a file, exporting Google Workspace
// files to a concrete MIME type first. Files that are neither text-like nor
// exportable native documents are rejected; drawings are always rejected.
func (c *Client) GetContent(ctx context.Context, fileID, mimeType string) (*ContentResult, error) {
	meta, err := c.getMeta(ctx, fileID)
	if err != nil {
		return nil, err
	}

	plan, err := planGetContent(meta.MimeType, mimeType)
	if err != nil {
		var typeErr *UnsupportedTypeError
		if errors.As(err, &typeErr) {
			typeErr.FileID = fileID
		}
		return nil, err
	}

	return c.retrieve(ctx, fileID, meta.Name, plan)
}

// Download retrieves the content of any file. Native documents are exported
// with the same default-selection rule as GetContent, but no content-type
// gate is applied: any file type may be downloaded. Text decoding uses the
// narrow text/* and application/json rule only.
func (c *Client) Download(ctx context.Context, fileID, mimeType string) (*ContentResult, error) {
	meta, err := c.getMeta(ctx, fileID)
	if err != nil {
		return nil, err
	}

	return c.retrieve(ctx, fileID, meta.Name, planDownload(meta.MimeType, mimeType))
}

// retrieve executes a content plan: export or raw fetch, then result shaping.
func (c *Client) retrieve(ctx context.Context, fileID, fileName string, plan contentPlan) (*ContentResult, error) {
	var (
		data []byte
		err  error
	)
	if plan.Export {
		data, err = c.export(ctx, fileID, plan.Resolved)
	} else {
		data, err = c.downloadMedia(ctx, fileID)
	}
	if err != nil {
		return nil, err
	}

	return &ContentResult{
		FileName: fileName,
		MimeType: plan.Reported,
		Data:     data,
		Text:     plan.Text,
	}, nil
}

// Upload uploads a local file, optionally into folderID, and returns the
// remote-assigned file ID. The content type is detected from the file
// extension.
func (c *Client) Upload(ctx context.Context, filePath, folderID string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", &IOError{Path: filePath, Err: err}
	}
	defer f.Close()

	contentType := stdmime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file := &drive.File{Name: filepath.Base(filePath)}
	if folderID != "" {
		file.Parents = []string{folderID}
	}

	created, err := c.service.Files.Create(file).
		Context(ctx).
		Media(f, googleapi.ContentType(contentType)).
		Fields("id").
		Do()
	if err != nil {
		return "", wrapAPIError("upload", "", err)
	}

	return created.Id, nil
}

// Delete removes a file from Drive.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	if err := c.service.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return wrapAPIError("delete", fileID, err)
	}
	return nil
}

// getMeta fetches the minimal metadata needed for content retrieval.
func (c *Client) getMeta(ctx context.Context, fileID string) (*drive.File, error) {
	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields("id, name, mimeType").
		Do()
	if err != nil {
		return nil, wrapAPIError("get_details", fileID, err)
	}
	return file, nil
}

// export performs a server-side conversion of a native document.
func (c *Client) export(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	resp, err := c.service.Files.Export(fileID, mimeType).Context(ctx).Download()
	if err != nil {
		return nil, wrapAPIError("export", fileID, err)
	}
	return readBody(resp, fileID)
}

// downloadMedia fetches the raw bytes of a non-native file.
func (c *Client) downloadMedia(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := c.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, wrapAPIError("download", fileID, err)
	}
	return readBody(resp, fileID)
}

func readBody(resp *http.Response, fileID string) ([]byte, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{Op: "read content", Err: fmt.Errorf("file %s: %w", fileID, err)}
	}
	return data, nil
}

// newFileRecord converts a Drive API File to the normalized record shape.
func newFileRecord(f *drive.File) *FileRecord {
	return &FileRecord{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		ModifiedTime: f.ModifiedTime,
		Size:         f.Size,
		Description:  f.Description,
		WebViewLink:  f.WebViewLink,
	}
}

func newFileRecords(files []*drive.File) []*FileRecord {
	records := make([]*FileRecord, len(files))
	for i, f := range files {
		records[i] = newFileRecord(f)
	}
	return records
}
