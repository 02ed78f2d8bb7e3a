package tool

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/teemow/driveagent/internal/drive"
	"github.com/teemow/driveagent/internal/logging"
)

// DefaultPageSize is applied when a paginated action omits page_size.
const DefaultPageSize int64 = 10

// Service is the set of Drive operations the dispatcher delegates to.
// *drive.Client satisfies it; tests substitute a spy.
type Service interface {
	Search(ctx context.Context, query string, pageSize int64) ([]*drive.FileRecord, error)
	List(ctx context.Context, folderID string, pageSize int64) ([]*drive.FileRecord, error)
	GetDetails(ctx context.Context, fileID string) (*drive.FileRecord, error)
	GetContent(ctx context.Context, fileID, mimeType string) (*drive.ContentResult, error)
	Download(ctx context.Context, fileID, mimeType string) (*drive.ContentResult, error)
	Upload(ctx context.Context, filePath, folderID string) (string, error)
	Delete(ctx context.Context, fileID string) error
}

var _ Service = (*drive.Client)(nil)

// Dispatcher routes action requests to the Drive service and wraps results
// in the output envelope. It holds no state beyond the service handle and
// logger, both fixed at construction.
type Dispatcher struct {
	svc Service
	log logging.Logger
}

// NewDispatcher creates a Dispatcher around the given service.
// A nil logger falls back to the default slog logger.
func NewDispatcher(svc Service, log logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.DefaultLogger()
	}
	return &Dispatcher{svc: svc, log: log}
}

// Invoke validates the request, delegates to the matching Drive operation
// and wraps the result. Validation failures are reported before any remote
// call; all failures are logged and returned unchanged.
func (d *Dispatcher) Invoke(ctx context.Context, req Request) (*Envelope, error) {
	d.log.Info("invoking action", logging.KeyAction, string(req.Action))
	d.log.Debug("input arguments",
		logging.KeyAction, string(req.Action),
		FieldQuery, req.Query,
		FieldFileID, req.FileID,
		FieldMimeType, req.MimeType,
		FieldFolderID, req.FolderID,
		FieldFilePath, req.FilePath,
		FieldPageSize, req.PageSize,
	)

	env, err := d.dispatch(ctx, req)
	if err != nil {
		d.log.Error("action failed",
			logging.KeyAction, string(req.Action),
			logging.KeyError, err.Error(),
		)
		return nil, err
	}
	return env, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, req Request) (*Envelope, error) {
	required, ok := requiredFields[req.Action]
	if !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid action: %s", req.Action)}
	}
	for _, field := range required {
		if req.fieldValue(field) == "" {
			return nil, missingFieldError(field)
		}
	}

	switch req.Action {
	case ActionSearchFiles:
		return d.searchFiles(ctx, req)
	case ActionListFiles:
		return d.listFiles(ctx, req)
	case ActionGetFileDetails:
		return d.getFileDetails(ctx, req)
	case ActionGetFileContent:
		return d.getFileContent(ctx, req)
	case ActionDownloadFile:
		return d.downloadFile(ctx, req)
	case ActionUploadFile:
		return d.uploadFile(ctx, req)
	case ActionDeleteFile:
		return d.deleteFile(ctx, req)
	default:
		// Unreachable: the requiredFields lookup above closes the set
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid action: %s", req.Action)}
	}
}

func (r Request) pageSize() int64 {
	if r.PageSize <= 0 {
		return DefaultPageSize
	}
	return r.PageSize
}

func (d *Dispatcher) searchFiles(ctx context.Context, req Request) (*Envelope, error) {
	pageSize := req.pageSize()
	files, err := d.svc.Search(ctx, req.Query, pageSize)
	if err != nil {
		return nil, err
	}

	return &Envelope{Output: map[string]interface{}{
		"message":             fmt.Sprintf("Found %d files matching the query (requested: %d)", len(files), pageSize),
		"files":               files,
		"requested_page_size": pageSize,
		"total_results":       len(files),
	}}, nil
}

func (d *Dispatcher) listFiles(ctx context.Context, req Request) (*Envelope, error) {
	pageSize := req.pageSize()
	files, err := d.svc.List(ctx, req.FolderID, pageSize)
	if err != nil {
		return nil, err
	}

	return &Envelope{Output: map[string]interface{}{
		"message":             fmt.Sprintf("Found %d files (requested: %d)", len(files), pageSize),
		"files":               files,
		"requested_page_size": pageSize,
		"total_results":       len(files),
	}}, nil
}

func (d *Dispatcher) getFileDetails(ctx context.Context, req Request) (*Envelope, error) {
	file, err := d.svc.GetDetails(ctx, req.FileID)
	if err != nil {
		return nil, err
	}

	return &Envelope{Output: map[string]interface{}{
		"message": fmt.Sprintf("Retrieved details for file: %s", file.Name),
		"file":    file,
	}}, nil
}

func (d *Dispatcher) getFileContent(ctx context.Context, req Request) (*Envelope, error) {
	result, err := d.svc.GetContent(ctx, req.FileID, req.MimeType)
	if err != nil {
		return nil, err
	}

	return &Envelope{Output: map[string]interface{}{
		"message":   fmt.Sprintf("Retrieved content for file: %s", result.FileName),
		"file_name": result.FileName,
		"mime_type": result.MimeType,
		"content":   contentValue(result),
	}}, nil
}

func (d *Dispatcher) downloadFile(ctx context.Context, req Request) (*Envelope, error) {
	result, err := d.svc.Download(ctx, req.FileID, req.MimeType)
	if err != nil {
		return nil, err
	}

	return &Envelope{Output: map[string]interface{}{
		"message":   fmt.Sprintf("Downloaded file: %s", result.FileName),
		"file_name": result.FileName,
		"mime_type": result.MimeType,
		"content":   contentValue(result),
	}}, nil
}

func (d *Dispatcher) uploadFile(ctx context.Context, req Request) (*Envelope, error) {
	fileID, err := d.svc.Upload(ctx, req.FilePath, req.FolderID)
	if err != nil {
		return nil, err
	}

	return &Envelope{Output: map[string]interface{}{
		"message": fmt.Sprintf("Uploaded file with ID: %s", fileID),
		"file_id": fileID,
	}}, nil
}

func (d *Dispatcher) deleteFile(ctx context.Context, req Request) (*Envelope, error) {
	if err := d.svc.Delete(ctx, req.FileID); err != nil {
		return nil, err
	}

	return &Envelope{Output: map[string]interface{}{
		"message": fmt.Sprintf("Deleted file with ID: %s", req.FileID),
		"success": true,
	}}, nil
}

// contentValue renders retrieved content for the envelope: decoded UTF-8
// text when the content is text-like, base64 otherwise.
func contentValue(result *drive.ContentResult) string {
	if result.Text {
		return string(result.Data)
	}
	return base64.StdEncoding.EncodeToString(result.Data)
}
