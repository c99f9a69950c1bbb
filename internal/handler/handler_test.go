package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/auth"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/config"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/handler"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/router"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/service"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/storage"
)

type fixture struct {
	e     *echo.Echo
	store *storage.MemoryStore
}

// newFixture builds the full handler stack over a fresh in-memory store, the
// same wiring as cmd/server minus redis, mysql and metrics.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{JWTSecret: "test-secret"}
	store := storage.NewMemoryStore()
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokens := auth.NewRedisTokenStore(nil) // nil cache: fail-safe no-op

	authSvc := service.NewAuthService(store, jwtService, tokens, nil)
	reportSvc := service.NewReportService(store, nil, nil)
	triageSvc := service.NewTriageService(store)

	e := echo.New()
	router.Register(
		e,
		cfg,
		handler.NewAuthHandler(authSvc),
		handler.NewReportHandler(reportSvc, jwtService),
		handler.NewAdminHandler(triageSvc),
	)
	return &fixture{e: e, store: store}
}

func (f *fixture) request(method, path, body string, headers ...map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, hs := range headers {
		for k, v := range hs {
			req.Header.Set(k, v)
		}
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (f *fixture) registerAlice(t *testing.T) string {
	t.Helper()
	rec := f.request(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	user := body["user"].(map[string]interface{})
	return user["id"].(string)
}

func TestRegister(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	user := body["user"].(map[string]interface{})
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "a@x.com", user["email"])
	// Sanitized view: no password in any form.
	assert.NotContains(t, user, "password")
	assert.NotContains(t, rec.Body.String(), "pw")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.registerAlice(t)

	rec := f.request(http.MethodPost, "/api/auth/register",
		`{"username":"alice2","email":"a@x.com","password":"other"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", decode(t, rec)["message"])
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodPost, "/api/auth/register",
		`{"username":"","email":"not-an-email","password":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Invalid data", body["message"])
	errs := body["errors"].([]interface{})
	require.Len(t, errs, 3)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.(map[string]interface{})["field"].(string))
	}
	assert.ElementsMatch(t, []string{"username", "email", "password"}, fields)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.registerAlice(t)

	t.Run("wrong password", func(t *testing.T) {
		rec := f.request(http.MethodPost, "/api/auth/login",
			`{"email":"a@x.com","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decode(t, rec)["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := f.request(http.MethodPost, "/api/auth/login",
			`{"email":"nobody@x.com","password":"pw"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decode(t, rec)["message"])
	})

	t.Run("success", func(t *testing.T) {
		rec := f.request(http.MethodPost, "/api/auth/login",
			`{"email":"a@x.com","password":"pw"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "alice", user["username"])
		assert.NotContains(t, user, "password")
		assert.NotEmpty(t, body["accessToken"])
	})
}

func TestSubmitReport(t *testing.T) {
	f := newFixture(t)
	aliceID := f.registerAlice(t)

	rec := f.request(http.MethodPost, "/api/hazard-reports",
		`{"description":"Rip current spotted","latitude":13.08,"longitude":80.27,"userId":"`+aliceID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	report := body["report"].(map[string]interface{})
	assert.NotEmpty(t, report["id"])
	assert.NotEmpty(t, report["createdAt"])
	assert.Equal(t, "Rip current spotted", report["description"])
	assert.Equal(t, 13.08, report["latitude"])
	assert.Equal(t, 80.27, report["longitude"])
	assert.Equal(t, aliceID, report["userId"])

	// The created report shows up immediately in the full listing.
	rec = f.request(http.MethodGet, "/api/hazard-reports", "")
	require.Equal(t, http.StatusOK, rec.Code)
	reports := decode(t, rec)["reports"].([]interface{})
	require.Len(t, reports, 1)
	assert.Equal(t, report["id"], reports[0].(map[string]interface{})["id"])
}

func TestSubmitReportMissingUserID(t *testing.T) {
	f := newFixture(t)
	f.registerAlice(t)

	rec := f.request(http.MethodPost, "/api/hazard-reports",
		`{"description":"Rip current spotted","latitude":13.08,"longitude":80.27}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User ID required", decode(t, rec)["message"])

	// No store mutation.
	rec = f.request(http.MethodGet, "/api/hazard-reports", "")
	assert.Empty(t, decode(t, rec)["reports"])
}

func TestSubmitReportUnknownUser(t *testing.T) {
	f := newFixture(t)
	f.registerAlice(t)

	rec := f.request(http.MethodPost, "/api/hazard-reports",
		`{"description":"Rip current spotted","latitude":13.08,"longitude":80.27,"userId":"ghost"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid user", decode(t, rec)["message"])
}

func TestSubmitReportValidation(t *testing.T) {
	f := newFixture(t)
	aliceID := f.registerAlice(t)

	t.Run("missing description", func(t *testing.T) {
		rec := f.request(http.MethodPost, "/api/hazard-reports",
			`{"latitude":13.08,"longitude":80.27,"userId":"`+aliceID+`"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, "Invalid data", body["message"])
		errs := body["errors"].([]interface{})
		require.Len(t, errs, 1)
		fe := errs[0].(map[string]interface{})
		assert.Equal(t, "description", fe["field"])
		assert.Equal(t, "required", fe["rule"])
	})

	t.Run("non-numeric latitude", func(t *testing.T) {
		rec := f.request(http.MethodPost, "/api/hazard-reports",
			`{"description":"x","latitude":"north","longitude":80.27,"userId":"`+aliceID+`"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid data", decode(t, rec)["message"])
	})

	t.Run("latitude out of range", func(t *testing.T) {
		rec := f.request(http.MethodPost, "/api/hazard-reports",
			`{"description":"x","latitude":123.4,"longitude":80.27,"userId":"`+aliceID+`"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	// None of the rejected submissions reached the store.
	rec := f.request(http.MethodGet, "/api/hazard-reports", "")
	assert.Empty(t, decode(t, rec)["reports"])
}

func TestSubmitReportWithBearerToken(t *testing.T) {
	f := newFixture(t)
	f.registerAlice(t)

	rec := f.request(http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode(t, rec)
	token := login["accessToken"].(string)
	aliceID := login["user"].(map[string]interface{})["id"].(string)

	// No userId in the body; the token identifies the submitter.
	rec = f.request(http.MethodPost, "/api/hazard-reports",
		`{"description":"Oil sheen offshore","latitude":13.0,"longitude":80.3}`,
		map[string]string{echo.HeaderAuthorization: "Bearer " + token})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	report := decode(t, rec)["report"].(map[string]interface{})
	assert.Equal(t, aliceID, report["userId"])
}

func TestListReportsByUser(t *testing.T) {
	f := newFixture(t)
	aliceID := f.registerAlice(t)

	rec := f.request(http.MethodPost, "/api/auth/register",
		`{"username":"bob","email":"b@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	bobID := decode(t, rec)["user"].(map[string]interface{})["id"].(string)

	for _, submit := range []struct{ desc, userID string }{
		{"alice report one", aliceID},
		{"bob report", bobID},
		{"alice report two", aliceID},
	} {
		rec := f.request(http.MethodPost, "/api/hazard-reports",
			`{"description":"`+submit.desc+`","latitude":13.0,"longitude":80.0,"userId":"`+submit.userID+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = f.request(http.MethodGet, "/api/hazard-reports/user/"+aliceID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	reports := decode(t, rec)["reports"].([]interface{})
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.Equal(t, aliceID, r.(map[string]interface{})["userId"])
	}

	// Unknown user id: empty list, not an error.
	rec = f.request(http.MethodGet, "/api/hazard-reports/user/ghost", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.NotNil(t, body["reports"])
	assert.Empty(t, body["reports"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodGet, "/api/admin/reports", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.request(http.MethodGet, "/api/admin/reports/stats", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminTriage(t *testing.T) {
	f := newFixture(t)
	aliceID := f.registerAlice(t)

	rec := f.request(http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["accessToken"].(string)
	authHeader := map[string]string{echo.HeaderAuthorization: "Bearer " + token}

	for _, desc := range []string{
		"Emergency: swimmer swept out",
		"Moderate swell building",
		"Plastic debris on the shore",
	} {
		rec := f.request(http.MethodPost, "/api/hazard-reports",
			`{"description":"`+desc+`","latitude":13.0,"longitude":80.0,"userId":"`+aliceID+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = f.request(http.MethodGet, "/api/admin/reports", "", authHeader)
	require.Equal(t, http.StatusOK, rec.Code)
	reports := decode(t, rec)["reports"].([]interface{})
	require.Len(t, reports, 3)
	for _, r := range reports {
		m := r.(map[string]interface{})
		assert.NotEmpty(t, m["severity"])
		assert.NotEmpty(t, m["priority"])
	}

	rec = f.request(http.MethodGet, "/api/admin/reports?priority=critical", "", authHeader)
	require.Equal(t, http.StatusOK, rec.Code)
	critical := decode(t, rec)["reports"].([]interface{})
	require.Len(t, critical, 1)
	assert.Contains(t, critical[0].(map[string]interface{})["description"], "Emergency")

	rec = f.request(http.MethodGet, "/api/admin/reports?priority=bogus", "", authHeader)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.request(http.MethodGet, "/api/admin/reports/stats", "", authHeader)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)
	assert.Equal(t, float64(3), stats["total"])
	assert.Equal(t, float64(1), stats["critical"])
}

func TestUnknownRouteShape(t *testing.T) {
	f := newFixture(t)

	rec := f.request(http.MethodGet, "/api/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode(t, rec), "message")
}
