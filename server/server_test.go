package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/vidsift/ai"
	"github.com/poiesic/vidsift/core"
	"github.com/poiesic/vidsift/discovery"
	"github.com/poiesic/vidsift/storage"
	storagebadger "github.com/poiesic/vidsift/storage/badger"
)

// fakeDiscoverer is a stand-in for the application facade.
type fakeDiscoverer struct {
	DiscoverFunc func(ctx context.Context, subject string, reporter discovery.Reporter) error
}

func (f *fakeDiscoverer) Discover(ctx context.Context, subject string, reporter discovery.Reporter) error {
	if f.DiscoverFunc != nil {
		return f.DiscoverFunc(ctx, subject, reporter)
	}
	reporter.Publish(discovery.Message{Kind: discovery.KindDone, Text: "Collected 0 videos (filtered out 0)"})
	return nil
}

type testServer struct {
	server   *Server
	videos   storage.VideoRepository
	settings storage.SettingsRepository
}

func newTestServer(t *testing.T, opts ...Option) *testServer {
	t.Helper()
	videos, settings, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	s, err := New(videos, settings, &fakeDiscoverer{}, opts...)
	require.NoError(t, err)
	return &testServer{server: s, videos: videos, settings: settings}
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewRequiresCollaborators(t *testing.T) {
	videos, settings, backend, err := storagebadger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	_, err = New(nil, settings, &fakeDiscoverer{})
	assert.ErrorIs(t, err, ErrVideosRequired)
	_, err = New(videos, nil, &fakeDiscoverer{})
	assert.ErrorIs(t, err, ErrSettingsRequired)
	_, err = New(videos, settings, nil)
	assert.ErrorIs(t, err, ErrDiscovererRequired)
}

func TestGetConfigMasksKey(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, ts.settings.Set(ctx, ai.SettingProvider, "deepseek"))
	require.NoError(t, ts.settings.Set(ctx, ai.SettingAPIKey, "sk-abcdef1234567890"))
	require.NoError(t, ts.settings.Set(ctx, ai.SettingModel, "deepseek-chat"))

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/config", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got configJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "deepseek", got.Provider)
	assert.Equal(t, "sk-...7890", got.APIKey)
	assert.Equal(t, "deepseek-chat", got.Model)
	assert.Equal(t, "https://api.deepseek.com", got.BaseURL)
	assert.True(t, got.Configured)
}

func TestGetConfigDefaultsWhenUnset(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/config", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got configJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "openai", got.Provider)
	assert.Equal(t, "", got.APIKey)
	assert.False(t, got.Configured)
}

func TestSetConfigVerifiesThenPersists(t *testing.T) {
	ts := newTestServer(t)
	verified := 0
	ts.server.verify = func(_ context.Context, cfg *ai.Config) error {
		verified++
		assert.Equal(t, "sk-abcdef1234567890", cfg.APIKey)
		return nil
	}

	body := `{"provider":"deepseek","api_key":"sk-abcdef1234567890","model":"deepseek-chat"}`
	req := httptest.NewRequest(http.MethodPost, "/api/config", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, verified)

	stored, err := ts.settings.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "deepseek", stored[ai.SettingProvider])
	assert.Equal(t, "sk-abcdef1234567890", stored[ai.SettingAPIKey])
	assert.Equal(t, "deepseek-chat", stored[ai.SettingModel])

	var got configJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "sk-...7890", got.APIKey)
}

func TestSetConfigRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.server.verify = func(context.Context, *ai.Config) error {
		return errors.New("401 unauthorized")
	}

	body := `{"provider":"openai","api_key":"sk-abcdef1234567890","model":"gpt-4o"}`
	req := httptest.NewRequest(http.MethodPost, "/api/config", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := ts.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Nothing was persisted.
	stored, err := ts.settings.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSetConfigWithoutKeySkipsVerification(t *testing.T) {
	ts := newTestServer(t)
	ts.server.verify = func(context.Context, *ai.Config) error {
		t.Fatal("verify must not be called without credentials")
		return nil
	}

	body := `{"provider":"openai","model":"gpt-4o"}`
	req := httptest.NewRequest(http.MethodPost, "/api/config", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got configJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Configured)
}

func TestListVideos(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"older", "middle", "newest"} {
		_, err := ts.videos.AddVideoIfAbsent(ctx, &core.VideoRecord{
			Video:    core.Video{ID: id, Title: "Ada Lovelace talk " + id, Duration: 900},
			AIReason: "ok",
			AddedAt:  base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/videos", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []videoJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].ID)
	assert.Equal(t, "older", got[2].ID)

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/videos?limit=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "newest", got[0].ID)
}

func TestListVideosRejectsBadLimit(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/videos?limit=nope", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
