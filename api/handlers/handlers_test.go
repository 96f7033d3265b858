package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poster-studio/api/handlers"
	"poster-studio/config"
	"poster-studio/quota"
)

func posterRouter(limiter *quota.GenerationQuotaLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/posters", handlers.GeneratePosterHandler(nil, limiter))
	return r
}

func photoForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("photo", "agent.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not-a-real-png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestGeneratePosterRejectsSpacedRequestImmediately(t *testing.T) {
	limiter := quota.NewFromConfig(config.QuotaConfig{RequestsPerMinute: 1})
	ok, _ := limiter.Reserve()
	require.True(t, ok)

	body, contentType := photoForm(t)
	req := httptest.NewRequest(http.MethodPost, "/posters", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	posterRouter(limiter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "spacing")
}

func TestGeneratePosterRejectsExhaustedDailyQuota(t *testing.T) {
	limiter := quota.NewFromConfig(config.QuotaConfig{RequestsPerDay: 1})
	ok, _ := limiter.Reserve()
	require.True(t, ok)

	body, contentType := photoForm(t)
	req := httptest.NewRequest(http.MethodPost, "/posters", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	posterRouter(limiter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Empty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "daily")
}

func TestGeneratePosterRequiresPhoto(t *testing.T) {
	limiter := quota.NewFromConfig(config.QuotaConfig{})

	req := httptest.NewRequest(http.MethodPost, "/posters", nil)
	rec := httptest.NewRecorder()

	posterRouter(limiter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
