package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit action types recorded against orders.
const (
	ActionOrderCreated   = "order_created"
	ActionOrderEdited    = "order_edited"
	ActionSnapshotRepair = "snapshot_repair"
	ActionStaffLogin     = "staff_login"
)

// AuditEntry is a single audit trail record. Request-scoped fields are set
// for HTTP traffic; order-scoped fields for order actions.
type AuditEntry struct {
	ID         primitive.ObjectID     `json:"id,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level"`
	Message    string                 `json:"message"`
	RequestID  string                 `json:"request_id,omitempty"`
	Method     string                 `json:"method,omitempty"`
	Path       string                 `json:"path,omitempty"`
	StatusCode int                    `json:"status_code,omitempty"`
	Duration   int64                  `json:"duration_ms,omitempty"`
	IP         string                 `json:"ip,omitempty"`
	OrderID    string                 `json:"order_id,omitempty"`
	Staff      string                 `json:"staff,omitempty"`
	ActionType string                 `json:"action_type,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// AuditQueryOptions narrows audit trail queries. Zero-value fields are ignored.
type AuditQueryOptions struct {
	RequestID  string
	OrderID    string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
