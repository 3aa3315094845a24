package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateRemark = errors.New("remark already exists")
	ErrRemarkNotFound  = errors.New("remark not found")
)

// RemarkStatus tracks whether a remark still needs attention.
type RemarkStatus int

const (
	RemarkPending RemarkStatus = iota
	RemarkCompleted
)

func (s RemarkStatus) String() string {
	switch s {
	case RemarkPending:
		return "pending"
	case RemarkCompleted:
		return "completed"
	default:
		return fmt.Sprintf("RemarkStatus(%d)", int(s))
	}
}

// ParseRemarkStatus is the inverse of RemarkStatus.String.
func ParseRemarkStatus(s string) (RemarkStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return RemarkPending, nil
	case "completed":
		return RemarkCompleted, nil
	default:
		return 0, fmt.Errorf("unknown remark status %q", s)
	}
}

// Remark is a free-text note attached to a person. Two remarks are equal when
// their normalised content matches; status is ignored.
type Remark struct {
	content string
	status  RemarkStatus
}

// NewRemark returns a pending remark.
func NewRemark(content string) (Remark, error) {
	return RestoreRemark(content, RemarkPending)
}

// RestoreRemark rebuilds a remark with a known status.
func RestoreRemark(content string, status RemarkStatus) (Remark, error) {
	v := strings.TrimSpace(content)
	if err := check("remark", v, "required,max=300",
		"remarks must not be blank and are at most 300 characters"); err != nil {
		return Remark{}, err
	}
	if status != RemarkPending && status != RemarkCompleted {
		return Remark{}, fmt.Errorf("unknown remark status %d", int(status))
	}
	return Remark{content: v, status: status}, nil
}

func (r Remark) Content() string      { return r.content }
func (r Remark) Status() RemarkStatus { return r.status }
func (r Remark) IsCompleted() bool    { return r.status == RemarkCompleted }

// Resolved returns the completed counterpart of r.
func (r Remark) Resolved() Remark {
	r.status = RemarkCompleted
	return r
}

func (r Remark) Equal(o Remark) bool {
	return Normalize(r.content) == Normalize(o.content)
}

func (r Remark) String() string {
	if r.IsCompleted() {
		return "[x] " + r.content
	}
	return "[ ] " + r.content
}
