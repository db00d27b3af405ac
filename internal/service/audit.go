package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/repository"
)

// AuditService defines the interface for audit trail operations.
type AuditService interface {
	// RecordEntry stores a single audit entry.
	RecordEntry(ctx context.Context, entry *model.AuditEntry) error

	// RecordEntries stores multiple audit entries in bulk.
	RecordEntries(ctx context.Context, entries []*model.AuditEntry) error

	// QueryEntries retrieves audit entries matching the query options.
	QueryEntries(ctx context.Context, opts model.AuditQueryOptions) ([]model.AuditEntry, error)

	// CountEntries returns the count of audit entries matching the query options.
	CountEntries(ctx context.Context, opts model.AuditQueryOptions) (int64, error)
}

// AuditServiceImpl implements the AuditService interface.
type AuditServiceImpl struct {
	repo repository.AuditRepositoryInterface
}

// NewAuditService creates a new audit service implementation.
func NewAuditService(repo repository.AuditRepositoryInterface) *AuditServiceImpl {
	return &AuditServiceImpl{
		repo: repo,
	}
}

// RecordEntry stores a single audit entry.
func (s *AuditServiceImpl) RecordEntry(ctx context.Context, entry *model.AuditEntry) error {
	return s.repo.Create(ctx, s.modelToDocument(entry))
}

// RecordEntries stores multiple audit entries in bulk.
func (s *AuditServiceImpl) RecordEntries(ctx context.Context, entries []*model.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.AuditEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = s.modelToDocument(entry)
	}

	return s.repo.CreateMany(ctx, docs)
}

// QueryEntries retrieves audit entries matching the query options.
func (s *AuditServiceImpl) QueryEntries(ctx context.Context, opts model.AuditQueryOptions) ([]model.AuditEntry, error) {
	docs, err := s.repo.Query(ctx, s.queryOptions(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.AuditEntry, len(docs))
	for i, doc := range docs {
		entries[i] = s.documentToModel(doc)
	}

	return entries, nil
}

// CountEntries returns the count of audit entries matching the query options.
func (s *AuditServiceImpl) CountEntries(ctx context.Context, opts model.AuditQueryOptions) (int64, error) {
	return s.repo.Count(ctx, s.queryOptions(opts))
}

func (s *AuditServiceImpl) queryOptions(opts model.AuditQueryOptions) repository.AuditQueryOptions {
	return repository.AuditQueryOptions{
		RequestID:  opts.RequestID,
		OrderID:    opts.OrderID,
		ActionType: opts.ActionType,
		StartTime:  opts.StartTime,
		EndTime:    opts.EndTime,
		Limit:      opts.Limit,
		Skip:       opts.Skip,
	}
}

// modelToDocument converts a domain model to a repository document.
func (s *AuditServiceImpl) modelToDocument(entry *model.AuditEntry) *repository.AuditEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	return &repository.AuditEntryDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		RequestID:  entry.RequestID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		Duration:   entry.Duration,
		IP:         entry.IP,
		OrderID:    entry.OrderID,
		Staff:      entry.Staff,
		ActionType: entry.ActionType,
		Fields:     entry.Fields,
	}
}

// documentToModel converts a repository document to a domain model.
func (s *AuditServiceImpl) documentToModel(doc *repository.AuditEntryDocument) model.AuditEntry {
	return model.AuditEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		Message:    doc.Message,
		RequestID:  doc.RequestID,
		Method:     doc.Method,
		Path:       doc.Path,
		StatusCode: doc.StatusCode,
		Duration:   doc.Duration,
		IP:         doc.IP,
		OrderID:    doc.OrderID,
		Staff:      doc.Staff,
		ActionType: doc.ActionType,
		Fields:     doc.Fields,
	}
}
