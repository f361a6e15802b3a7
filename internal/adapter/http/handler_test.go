package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mailflow/internal/adapter/metrics"
	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
	"mailflow/internal/core/port/mocks"
)

type fixture struct {
	accounts    *mocks.MockAccountUseCase
	audiences   *mocks.MockAudienceUseCase
	campaigns   *mocks.MockCampaignUseCase
	automations *mocks.MockAutomationUseCase
	handler     http.Handler
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		accounts:    mocks.NewMockAccountUseCase(t),
		audiences:   mocks.NewMockAudienceUseCase(t),
		campaigns:   mocks.NewMockCampaignUseCase(t),
		automations: mocks.NewMockAutomationUseCase(t),
	}
	f.handler = NewHandler(UseCases{
		Accounts:    f.accounts,
		Audiences:   f.audiences,
		Campaigns:   f.campaigns,
		Automations: f.automations,
	}, slog.New(slog.NewTextHandler(io.Discard, nil))).Router()
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestWelcome(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to backend!"}`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodGet, "/healthz", "")

	rec := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mailflow_http_requests_total")
}

func TestMetricsUnmatchedRouteLabel(t *testing.T) {
	f := newFixture(t)
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(unmatched)

	f.do(http.MethodGet, "/no/such/path-8c1f", "")
	f.do(http.MethodGet, "/no/such/path-42aa", "")

	assert.Equal(t, before+2, testutil.ToFloat64(unmatched))
	rec := f.do(http.MethodGet, "/metrics", "")
	assert.NotContains(t, rec.Body.String(), "path-8c1f")
}

func TestCreateAutomation(t *testing.T) {
	f := newFixture(t)
	sched := time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC)

	f.automations.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in port.AutomationInput) bool {
			return in.Name == "Spring" &&
				in.Schedule != nil && in.Schedule.Equal(sched) &&
				in.Campaign == 3 &&
				assert.ObjectsAreEqual([]int64{1, 2}, in.AudienceIDs) &&
				in.Status == domain.StatusRunning
		})).
		Return(&port.AutomationView{
			ID:        7,
			Name:      "Spring",
			Schedule:  &sched,
			Campaign:  3,
			Status:    domain.StatusRunning,
			Audiences: []domain.Recipient{{ID: 1, Email: "a@example.com"}},
		}, nil)

	rec := f.do(http.MethodPost, "/api/automation",
		`{"name":"Spring","schedule":"2025-04-20T10:00:00Z","campaign":3,"audienceIds":[1,2],"status":"Running"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode[struct {
		Data    port.AutomationView `json:"data"`
		Message string              `json:"message"`
	}](t, rec)
	assert.Equal(t, "Automation created successfully", body.Message)
	assert.Equal(t, int64(7), body.Data.ID)
	assert.Equal(t, []domain.Recipient{{ID: 1, Email: "a@example.com"}}, body.Data.Audiences)
}

func TestCreateAutomationValidationError(t *testing.T) {
	f := newFixture(t)

	f.automations.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, &port.ValidationError{Fields: map[string]string{"audienceIds": "Invalid audience IDs: 9"}})

	rec := f.do(http.MethodPost, "/api/automation",
		`{"name":"x","schedule":null,"campaign":1,"audienceIds":[9],"status":"Paused"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errorBody](t, rec)
	assert.Equal(t, "Invalid audience IDs: 9", body.Errors["audienceIds"])
}

func TestCreateAutomationMalformedBody(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"not json", `{"name":`, "body"},
		{"empty", "", "body"},
		{"wrong type", `{"campaign":"three"}`, "campaign"},
		{"bad schedule", `{"schedule":"tomorrow"}`, "body"},
		{"trailing garbage", `{"name":"x","schedule":null} garbage`, "body"},
		{"two objects", `{"schedule":null} {}`, "body"},
		{"missing schedule", `{"name":"x","campaign":1,"audienceIds":[1],"status":"Paused"}`, "schedule"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(http.MethodPost, "/api/automation", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[errorBody](t, rec).Errors, tt.field)
		})
	}
}

func TestGetAutomation(t *testing.T) {
	f := newFixture(t)

	f.automations.EXPECT().Get(mock.Anything, int64(1)).
		Return(&port.AutomationView{ID: 1, Audiences: []domain.Recipient{}}, nil)
	f.automations.EXPECT().Get(mock.Anything, int64(2)).Return(nil, port.ErrNotFound)

	rec := f.do(http.MethodGet, "/api/automation/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"audiences":[]`)
	assert.Contains(t, rec.Body.String(), `"schedule":null`)

	rec = f.do(http.MethodGet, "/api/automation/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Automation not found"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/automation/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAutomationsEmpty(t *testing.T) {
	f := newFixture(t)
	f.automations.EXPECT().List(mock.Anything).Return([]port.AutomationView{}, nil)

	rec := f.do(http.MethodGet, "/api/automation", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestUpdateAutomationNotFound(t *testing.T) {
	f := newFixture(t)
	f.automations.EXPECT().Update(mock.Anything, int64(5), mock.Anything).Return(nil, port.ErrNotFound)

	rec := f.do(http.MethodPut, "/api/automation/5",
		`{"name":"x","schedule":null,"campaign":1,"audienceIds":[1],"status":"Paused"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAutomation(t *testing.T) {
	f := newFixture(t)
	f.automations.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)
	f.automations.EXPECT().Delete(mock.Anything, int64(2)).Return(port.ErrNotFound)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/automation/1", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/automation/2", "").Code)
}

func TestInternalErrorIsHidden(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().List(mock.Anything).
		Return(nil, &port.StorageError{Op: "list campaigns", Err: errors.New("password authentication failed")})

	rec := f.do(http.MethodGet, "/api/campaign", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestCampaignJSONShape(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Get(mock.Anything, int64(3)).Return(&domain.Campaign{
		ID: 3, Name: "Spring", SubjectLine: "Hello", EmailContent: "<p>hi</p>",
	}, nil)

	rec := f.do(http.MethodGet, "/api/campaign/3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Data map[string]any `json:"data"`
	}](t, rec)
	assert.Equal(t, "Spring", body.Data["campaignName"])
	assert.Equal(t, "Hello", body.Data["subjectLine"])
	assert.Equal(t, "<p>hi</p>", body.Data["emailContent"])
}

func TestDeleteReferencedCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Delete(mock.Anything, int64(3)).Return(port.ErrConflict)

	assert.Equal(t, http.StatusConflict, f.do(http.MethodDelete, "/api/campaign/3", "").Code)
}

func TestCreateAudience(t *testing.T) {
	f := newFixture(t)
	in := port.AudienceInput{Name: "VIP", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	f.audiences.EXPECT().Create(mock.Anything, in).Return(&domain.Audience{
		ID: 1, Name: in.Name, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email,
	}, nil)

	rec := f.do(http.MethodPost, "/api/audience",
		`{"name":"VIP","firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode[struct {
		Data    audienceResponse `json:"data"`
		Message string           `json:"message"`
	}](t, rec)
	assert.Equal(t, "Audience created successfully", body.Message)
	assert.Equal(t, "Ada", body.Data.FirstName)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().Login(mock.Anything, "admin@example.com", "wrong").
		Return(&port.LoginResult{Status: port.LoginFailed, Message: "Invalid password!"}, nil)

	rec := f.do(http.MethodPost, "/api/account/login", `{"email":"admin@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"failed","message":"Invalid password!"}`, rec.Body.String())
}

func TestCreateAccountConflict(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().Create(mock.Anything, port.AccountInput{Email: "a@example.com", Password: "p"}).
		Return(nil, port.ErrConflict)

	rec := f.do(http.MethodPost, "/api/account", `{"email":"a@example.com","password":"p"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAccountResponseOmitsPassword(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().Get(mock.Anything, int64(1)).Return(&port.AccountView{ID: 1, Email: "a@example.com"}, nil)

	rec := f.do(http.MethodGet, "/api/account/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRequestIDEchoed(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}
