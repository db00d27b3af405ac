// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/service"
)

// AuditLog records an action in the audit trail.
// Used for critical actions: order submission, staff edits, repair runs.
func AuditLog(auditService service.AuditService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if auditService == nil {
		return
	}

	entry := auditEntryFromContext(c, actionType, message, fields)
	entry.Level = "info"

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = auditService.RecordEntry(ctx, entry)
	}()
}

// AuditLogError records a failed action in the audit trail.
func AuditLogError(auditService service.AuditService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if auditService == nil {
		return
	}

	entry := auditEntryFromContext(c, actionType, message, fields)
	entry.Level = "error"
	if err != nil {
		if entry.Fields == nil {
			entry.Fields = map[string]interface{}{}
		}
		entry.Fields["error"] = err.Error()
	}

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = auditService.RecordEntry(ctx, entry)
	}()
}

func auditEntryFromContext(c *gin.Context, actionType, message string, fields map[string]interface{}) *model.AuditEntry {
	entry := &model.AuditEntry{
		Timestamp:  time.Now(),
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		ActionType: actionType,
		Fields:     fields,
	}

	if claims := GetStaffClaims(c); claims != nil {
		entry.Staff = claims.Username
	}

	return entry
}
