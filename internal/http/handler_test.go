package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/agrodat/property360/internal/assistant"
	"github.com/agrodat/property360/internal/excel"
	"github.com/agrodat/property360/internal/model"
	"github.com/agrodat/property360/internal/pdf"
	"github.com/agrodat/property360/internal/service"
)

type memoryStore struct{}

func (memoryStore) Load(string, interface{}) bool { return false }
func (memoryStore) Save(string, interface{})      {}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zerolog.Nop()
	st := memoryStore{}
	state := service.LoadState(st)

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		t.Fatalf("pdf generator: %v", err)
	}

	handler := NewHandler(
		service.NewFieldService(state, st, log),
		service.NewTaskService(state, st, log),
		service.NewLedgerService(state, st, log),
		service.NewReportService(state, excel.NewGenerator(), pdfGenerator),
		service.NewAssistantService(assistant.NewStatic(), log),
		log,
	)
	return NewRouter(handler, "development")
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetPropertyServesDefaultDataset(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/property", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var property model.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &property); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if property.Name == "" || len(property.Fields) == 0 {
		t.Fatalf("property = %+v", property)
	}
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/tasks", `{"title":"Nova tarefa","priority":"High","date":"05/03/2024"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.Date != "2024-03-05" {
		t.Fatalf("created = %+v", created)
	}

	rec = doJSON(router, http.MethodPatch, "/tasks/"+formatID(created.ID)+"/status", `{"status":"done"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status move = %d, body %s", rec.Code, rec.Body.String())
	}

	// destructive route without the confirm flag
	rec = doJSON(router, http.MethodDelete, "/tasks/"+formatID(created.ID), "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed delete = %d", rec.Code)
	}

	rec = doJSON(router, http.MethodDelete, "/tasks/"+formatID(created.ID)+"?confirm=true", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("confirmed delete = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestUnknownFieldMapsToNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPatch, "/property/fields/ghost/cycle", `{"cycleProgressPercent":50}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestInvalidCycleStatusRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPatch, "/property/fields/ghost/cycle", `{"cycleStatus":"Resting"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAssistantRoundtrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/assistant/messages", `{"message":"Como está a safra?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var reply model.ChatMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reply.Role != model.ChatRoleModel || reply.Text == "" {
		t.Fatalf("reply = %+v", reply)
	}

	rec = doJSON(router, http.MethodGet, "/assistant/messages", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("transcript status = %d", rec.Code)
	}
	var transcript []model.ChatMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &transcript); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if len(transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(transcript))
	}
}

func TestWeatherEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/weather", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload struct {
		Forecast      model.Forecast      `json:"forecast"`
		SprayAdvisory model.SprayAdvisory `json:"sprayAdvisory"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Forecast.Hourly) == 0 || payload.SprayAdvisory.Status == "" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestExportReportDownload(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/reports/financial/export", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "financeiro-completo.xlsx") {
		t.Fatalf("content disposition = %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("empty download")
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
