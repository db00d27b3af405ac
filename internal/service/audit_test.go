package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/mocks"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/repository"
)

func TestAuditService_RecordEntry(t *testing.T) {
	repo := new(mocks.MockAuditRepositoryInterface)
	svc := NewAuditService(repo)

	entry := &model.AuditEntry{
		Level:      "info",
		Message:    "order_created",
		OrderID:    "abc123",
		ActionType: model.ActionOrderCreated,
	}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.AuditEntryDocument) bool {
		return doc.ActionType == model.ActionOrderCreated &&
			doc.OrderID == "abc123" &&
			!doc.ID.IsZero() &&
			!doc.Timestamp.IsZero()
	})).Return(nil)

	err := svc.RecordEntry(context.Background(), entry)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAuditService_RecordEntry_PreservesExplicitFields(t *testing.T) {
	repo := new(mocks.MockAuditRepositoryInterface)
	svc := NewAuditService(repo)

	id := primitive.NewObjectID()
	ts := time.Date(2025, 11, 30, 8, 0, 0, 0, time.UTC)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.AuditEntryDocument) bool {
		return doc.ID == id && doc.Timestamp.Equal(ts)
	})).Return(nil)

	err := svc.RecordEntry(context.Background(), &model.AuditEntry{ID: id, Timestamp: ts})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAuditService_RecordEntries(t *testing.T) {
	t.Run("bulk insert", func(t *testing.T) {
		repo := new(mocks.MockAuditRepositoryInterface)
		svc := NewAuditService(repo)

		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.AuditEntryDocument) bool {
			return len(docs) == 2
		})).Return(nil)

		err := svc.RecordEntries(context.Background(), []*model.AuditEntry{
			{Message: "a"}, {Message: "b"},
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("empty slice is a no-op", func(t *testing.T) {
		repo := new(mocks.MockAuditRepositoryInterface)
		svc := NewAuditService(repo)

		require.NoError(t, svc.RecordEntries(context.Background(), nil))
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})
}

func TestAuditService_QueryEntries(t *testing.T) {
	repo := new(mocks.MockAuditRepositoryInterface)
	svc := NewAuditService(repo)

	start := time.Now().Add(-time.Hour)
	opts := model.AuditQueryOptions{
		OrderID:    "abc123",
		ActionType: model.ActionOrderEdited,
		StartTime:  &start,
		Limit:      10,
	}

	repo.On("Query", mock.Anything, mock.MatchedBy(func(o repository.AuditQueryOptions) bool {
		return o.OrderID == "abc123" && o.ActionType == model.ActionOrderEdited &&
			o.StartTime == &start && o.Limit == 10
	})).Return([]*repository.AuditEntryDocument{
		{Message: "order_edited", OrderID: "abc123", Staff: "frontdesk"},
	}, nil)

	entries, err := svc.QueryEntries(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "frontdesk", entries[0].Staff)

	t.Run("query failure", func(t *testing.T) {
		repo := new(mocks.MockAuditRepositoryInterface)
		svc := NewAuditService(repo)
		repo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("index missing"))

		_, err := svc.QueryEntries(context.Background(), model.AuditQueryOptions{})
		assert.Error(t, err)
	})
}

func TestAuditService_CountEntries(t *testing.T) {
	repo := new(mocks.MockAuditRepositoryInterface)
	svc := NewAuditService(repo)

	repo.On("Count", mock.Anything, mock.Anything).Return(int64(42), nil)

	count, err := svc.CountEntries(context.Background(), model.AuditQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
