package model

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLogModel is an append-only record of every API request. Rows are
// written after the response is sent and never block the request path.
type AuditLogModel struct {
	ID         uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Timestamp  time.Time      `gorm:"column:timestamp;not null;index" json:"timestamp"`
	Action     string         `gorm:"column:action;type:varchar(50);not null" json:"action"`
	Method     string         `gorm:"column:method;type:varchar(10);not null" json:"method"`
	URL        string         `gorm:"column:url;type:text;not null" json:"url"`
	UserID     *string        `gorm:"column:user_id;type:varchar(40)" json:"user_id,omitempty"`
	UserPhone  *string        `gorm:"column:user_phone;type:varchar(10)" json:"user_phone,omitempty"`
	IP         string         `gorm:"column:ip;type:varchar(45)" json:"ip"`
	UserAgent  string         `gorm:"column:user_agent;type:text" json:"user_agent"`
	Body       datatypes.JSON `gorm:"column:body" json:"body,omitempty"`
	Query      datatypes.JSON `gorm:"column:query" json:"query,omitempty"`
	StatusCode int            `gorm:"column:status_code" json:"status_code"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }
