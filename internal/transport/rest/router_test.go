package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"riskradar/internal/cache"
	"riskradar/internal/model"
	"riskradar/internal/service"
)

type failingFetcher struct{}

func (failingFetcher) FetchTable(_ context.Context, _ model.Pathway) (*model.PathwayTable, error) {
	return nil, errors.New("no sheet configured")
}

type memReportRepo struct {
	reports map[string]*model.Report
}

func (r *memReportRepo) Create(_ context.Context, report *model.Report) (string, error) {
	id := "r1"
	report.ID = id
	r.reports[id] = report
	return id, nil
}

func (r *memReportRepo) GetByID(_ context.Context, id string) (*model.Report, error) {
	return r.reports[id], nil
}

func (r *memReportRepo) ListByPathway(_ context.Context, pathway model.Pathway, _ int64) ([]*model.Report, error) {
	var out []*model.Report
	for _, rep := range r.reports {
		if rep.Pathway == pathway {
			out = append(out, rep)
		}
	}
	return out, nil
}

func newTestRouter() http.Handler {
	weightsSvc := service.NewWeightsService(failingFetcher{}, cache.NewMemoryTableCache(time.Minute, nil))
	repo := &memReportRepo{reports: map[string]*model.Report{}}
	assessmentSvc := service.NewAssessmentService(weightsSvc, repo, nil)
	return NewRouter(&Container{
		AssessmentService: assessmentSvc,
		WeightsService:    weightsSvc,
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCreateAndGetAssessment(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"pathway": "crisis",
		"answers": map[string]string{"communication_quality": "Bardzo zła"},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/assessments", bytes.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var report model.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.ID == "" || report.Pathway != model.PathwayCrisis {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.MainTitle == "" {
		t.Fatal("report content missing")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/assessments/"+report.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCreateAssessmentRejectsBadPathway(t *testing.T) {
	router := newTestRouter()

	body := []byte(`{"pathway":"bogus","answers":{}}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/assessments", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetAssessmentNotFound(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/assessments/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPathwayQuestions(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/pathways/divorce/questions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Pathway   model.Pathway    `json:"pathway"`
		Questions []model.Question `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Pathway != model.PathwayDivorce || len(resp.Questions) == 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPathwayQuestionsUnknown(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/pathways/bogus/questions", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestClearCacheEndpoints(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/v1/cache/crisis", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/v1/cache", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/v1/cache/bogus", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListAssessments(t *testing.T) {
	router := newTestRouter()

	body := []byte(`{"pathway":"before","answers":{}}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/assessments", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/assessments?pathway=before", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Reports []*model.Report `json:"reports"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(resp.Reports))
	}
}
