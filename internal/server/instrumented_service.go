package server

import (
	"context"
	"time"

	"github.com/teemow/driveagent/internal/drive"
	"github.com/teemow/driveagent/internal/instrumentation"
	"github.com/teemow/driveagent/internal/tool"
)

// instrumentedService decorates a Drive service with per-operation metrics
// and tracing spans. The dispatcher sees the same interface; failures pass
// through unchanged.
type instrumentedService struct {
	svc     tool.Service
	metrics *instrumentation.Metrics
}

func newInstrumentedService(svc tool.Service, metrics *instrumentation.Metrics) *instrumentedService {
	return &instrumentedService{svc: svc, metrics: metrics}
}

var _ tool.Service = (*instrumentedService)(nil)

// record finishes the span and records operation metrics.
func (s *instrumentedService) record(ctx context.Context, operation string, start time.Time, err error) {
	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	s.metrics.RecordDriveOperation(ctx, operation, status, time.Since(start))
}

func (s *instrumentedService) Search(ctx context.Context, query string, pageSize int64) ([]*drive.FileRecord, error) {
	start := time.Now()
	ctx, span := instrumentation.StartDriveSpan(ctx, instrumentation.OperationSearch)
	defer span.End()

	files, err := s.svc.Search(ctx, query, pageSize)
	instrumentation.SetSpanError(span, err)
	s.record(ctx, instrumentation.OperationSearch, start, err)
	return files, err
}

func (s *instrumentedService) List(ctx context.Context, folderID string, pageSize int64) ([]*drive.FileRecord, error) {
	start := time.Now()
	ctx, span := instrumentation.StartDriveSpan(ctx, instrumentation.OperationList)
	defer span.End()

	files, err := s.svc.List(ctx, folderID, pageSize)
	instrumentation.SetSpanError(span, err)
	s.record(ctx, instrumentation.OperationList, start, err)
	return files, err
}

func (s *instrumentedService) GetDetails(ctx context.Context, fileID string) (*drive.FileRecord, error) {
	start := time.Now()
	ctx, span := instrumentation.StartDriveSpan(ctx, instrumentation.OperationGetDetails,
		instrumentation.NewSpanAttributeBuilder().WithFileID(fileID).Build()...)
	defer span.End()

	file, err := s.svc.GetDetails(ctx, fileID)
	instrumentation.SetSpanError(span, err)
	s.record(ctx, instrumentation.OperationGetDetails, start, err)
	return file, err
}

func (s *instrumentedService) GetContent(ctx context.Context, fileID, mimeType string) (*drive.ContentResult, error) {
	start := time.Now()
	ctx, span := instrumentation.StartDriveSpan(ctx, instrumentation.OperationGetContent,
		instrumentation.NewSpanAttributeBuilder().WithFileID(fileID).WithMimeType(mimeType).Build()...)
	defer span.End()

	result, err := s.svc.GetContent(ctx, fileID, mimeType)
	instrumentation.SetSpanError(span, err)
	s.record(ctx, instrumentation.OperationGetContent, start, err)
	return result, err
}

func (s *instrumentedService) Download(ctx context.Context, fileID, mimeType string) (*drive.ContentResult, error) {
	start := time.Now()
	ctx, span := instrumentation.StartDriveSpan(ctx, instrumentation.OperationDownload,
		instrumentation.NewSpanAttributeBuilder().WithFileID(fileID).WithMimeType(mimeType).Build()...)
	defer span.End()

	result, err := s.svc.Download(ctx, fileID, mimeType)
	instrumentation.SetSpanError(span, err)
	s.record(ctx, instrumentation.OperationDownload, start, err)
	return result, err
}

func (s *instrumentedService) Upload(ctx context.Context, filePath, folderID string) (string, error) {
	start := time.Now()
	ctx, span := instrumentation.StartDriveSpan(ctx, instrumentation.OperationUpload)
	defer span.End()

	fileID, err := s.svc.Upload(ctx, filePath, folderID)
	instrumentation.SetSpanError(span, err)
	s.record(ctx, instrumentation.OperationUpload, start, err)
	return fileID, err
}

func (s *instrumentedService) Delete(ctx context.Context, fileID string) error {
	start := time.Now()
	ctx, span := instrumentation.StartDriveSpan(ctx, instrumentation.OperationDelete,
		instrumentation.NewSpanAttributeBuilder().WithFileID(fileID).Build()...)
	defer span.End()

	err := s.svc.Delete(ctx, fileID)
	instrumentation.SetSpanError(span, err)
	s.record(ctx, instrumentation.OperationDelete, start, err)
	return err
}
