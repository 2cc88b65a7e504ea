package net

import (
	"net/http"

	perr "commentsweep/internal/platform/errors"
)

// Wire is the json envelope every endpoint answers with, success or failure
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Details    any            `json:"details,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Data wraps a successful payload
func Data(status int, data any, reqID string) Wire {
	return Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// Error maps err onto its status and envelope. A nil err is a plain 200
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return http.StatusOK, Data(http.StatusOK, nil, reqID)
	}
	status := perr.HTTPStatus(err)
	pw := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       pw.Code,
		Error:      pw.Message,
		Reason:     pw.Reason,
		Details:    pw.Details,
		RequestID:  reqID,
	}
}
