package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool            `json:"success"`
	Error   dto.ErrorDetail `json:"error"`
}

func serveError(t *testing.T, err error) (int, errorBody) {
	t.Helper()
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body errorBody
	if jsonErr := json.Unmarshal(w.Body.Bytes(), &body); jsonErr != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), jsonErr)
	}
	return w.Code, body
}

func TestHandleAPIErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found", fmt.Errorf("error deleting: %w", apperrors.ErrEnrollmentNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"validation", apperrors.NewValidationError("name", "name cannot be empty"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.ErrStudentIDMismatch, http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"already exists", apperrors.ErrDocumentNumberExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"conflict", apperrors.ErrTeacherInUse, http.StatusConflict, dto.ErrorCodeConflict},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serveError(t, tt.err)
			if status != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, status)
			}
			if body.Success {
				t.Fatalf("error response must not be successful")
			}
			if body.Error.Code != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, body.Error.Code)
			}
		})
	}
}

func TestHandleAPIErrorHidesInternalMessage(t *testing.T) {
	_, body := serveError(t, errors.New("password authentication failed for user"))
	if strings.Contains(body.Error.Message, "password") {
		t.Fatalf("internal error leaked: %q", body.Error.Message)
	}
}

func TestHandleAPIErrorCodedError(t *testing.T) {
	coded := apperrors.NewCustomError(apperrors.ErrBadRequest, "the student already has a subject with the same teacher").
		WithCode(string(dto.ErrorCodeEnrollmentRejected)).
		WithDetails(map[string]interface{}{"reason": "TeacherConflict"})

	status, body := serveError(t, fmt.Errorf("enrolling: %w", coded))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body.Error.Code != dto.ErrorCodeEnrollmentRejected {
		t.Fatalf("expected code %s, got %s", dto.ErrorCodeEnrollmentRejected, body.Error.Code)
	}
	if body.Error.Severity != dto.ErrorSeverityWarning {
		t.Fatalf("expected warning severity, got %s", body.Error.Severity)
	}
	if body.Error.Message != coded.Message {
		t.Fatalf("unexpected message %q", body.Error.Message)
	}
	details, ok := body.Error.Details.(map[string]interface{})
	if !ok || details["reason"] != "TeacherConflict" {
		t.Fatalf("expected reason in details, got %#v", body.Error.Details)
	}
}

func TestHandleAPIErrorFieldDetails(t *testing.T) {
	_, body := serveError(t, apperrors.NewValidationError("documentNumber", "documentNumber cannot be empty"))
	if body.Error.Field != "documentNumber" {
		t.Fatalf("expected field documentNumber, got %q", body.Error.Field)
	}
	if body.Error.Message != "documentNumber cannot be empty" {
		t.Fatalf("unexpected message %q", body.Error.Message)
	}
}

func TestHandleBindingError(t *testing.T) {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req dto.EnrollmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindingError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name  string
		body  string
		code  dto.ErrorCode
		field string
	}{
		{"missing field", `{"studentId":1}`, dto.ErrorCodeValidationFailed, "subjectId"},
		{"negative id", `{"studentId":-1,"subjectId":2}`, dto.ErrorCodeValidationFailed, "studentId"},
		{"malformed", `{"studentId":`, dto.ErrorCodeBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var body errorBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error.Code != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, body.Error.Code)
			}
			if body.Error.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, body.Error.Field)
			}
		})
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" || generated != w.Body.String() {
		t.Fatalf("expected generated request id in header and context, got %q / %q", generated, w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected incoming request id to be kept, got %q", got)
	}
}
