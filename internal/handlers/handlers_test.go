package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hairash/ai-helper/internal/middleware"
	"github.com/Hairash/ai-helper/internal/services"
)

// ─── JSON Response Tests ───

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusOK, map[string]string{"text": "Hi"})

	if rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got %q", rr.Header().Get("Content-Type"))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["text"] != "Hi" {
		t.Errorf("Expected text 'Hi', got %v", result["text"])
	}
}

func TestErrorResp_CarriesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/ai_reply", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-7")

	resp := errorResp("VALIDATION_ERROR", "Invalid input", req)

	if resp.Error.Code != "VALIDATION_ERROR" || resp.Error.Message != "Invalid input" {
		t.Errorf("unexpected error %+v", resp.Error)
	}
	if resp.Error.RequestID != "req-7" {
		t.Errorf("Expected request id 'req-7', got %q", resp.Error.RequestID)
	}
	if resp.Error.Fields != nil {
		t.Errorf("Expected no field errors, got %v", resp.Error.Fields)
	}
}

// ─── Service Error Mapping ───

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		wantCode string
	}{
		{"validation", &services.ValidationError{Message: "No messages provided"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"upstream", &services.UpstreamError{Message: "mistral returned status 500"}, http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"upstream timeout", &services.UpstreamError{Message: "mistral request failed", Timeout: true, Err: context.DeadlineExceeded}, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT"},
		{"wrapped upstream", fmt.Errorf("compose: %w", &services.UpstreamError{Message: "bad body"}), http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handleServiceError(rr, httptest.NewRequest(http.MethodPost, "/ai_reply", nil), tc.err)

			if rr.Code != tc.status {
				t.Fatalf("Expected status %d, got %d", tc.status, rr.Code)
			}

			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if body.Error.Code != tc.wantCode {
				t.Errorf("Expected code %q, got %q", tc.wantCode, body.Error.Code)
			}
		})
	}
}

func TestHandleServiceError_ValidationFields(t *testing.T) {
	rr := httptest.NewRecorder()
	err := &services.ValidationError{
		Message: "Invalid messages",
		Fields:  map[string]string{"messages[0].role": "Role is required"},
	}

	handleServiceError(rr, httptest.NewRequest(http.MethodPost, "/ai_reply", nil), err)

	var body struct {
		Error struct {
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Error.Fields["messages[0].role"] != "Role is required" {
		t.Errorf("Expected field error, got %v", body.Error.Fields)
	}
}
