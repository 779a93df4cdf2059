package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"whale/src/api/handlers"
)

func TestHealthcheck(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/alive", nil)
	handlers.Healthcheck(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); body != `{"status": "ok"}` {
		t.Errorf("unexpected body %q", body)
	}
}
