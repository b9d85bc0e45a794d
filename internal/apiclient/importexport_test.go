package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempImport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportUploadRefreshesStaleToken(t *testing.T) {
	var uploads, refreshes int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshes++
			json.NewEncoder(w).Encode(map[string]string{"token": "fresh", "refresh_token": "fresh-rt"})
			return
		}
		uploads++
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid or expired token"}`))
			return
		}
		// The retried request must replay the full multipart body.
		require.NoError(t, r.ParseMultipartForm(MaxImportSize))
		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "staff.xlsx", header.Filename)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"totalRows": 2, "successCount": 2, "errorCount": 0},
		})
	}))
	defer srv.Close()

	path := writeTempImport(t, "staff.xlsx", "workbook bytes")
	c := New(srv.URL, "stale", "rt")

	result, err := c.ImportEmployees(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshes)
	assert.Equal(t, 2, uploads, "original upload plus exactly one retry")
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, "fresh", c.Token())
}

func TestExportDownloadRefreshesStaleToken(t *testing.T) {
	var downloads, refreshes int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshes++
			json.NewEncoder(w).Encode(map[string]string{"token": "fresh", "refresh_token": "fresh-rt"})
			return
		}
		downloads++
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid or expired token"}`))
			return
		}
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		w.Write([]byte("first_name,last_name\nAsha,Rao\n"))
	}))
	defer srv.Close()

	c := New(srv.URL, "stale", "rt")
	blob, err := c.ExportEmployees(context.Background(), "csv", []string{"basic"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshes)
	assert.Equal(t, 2, downloads, "original download plus exactly one retry")
	assert.True(t, strings.HasPrefix(string(blob), "first_name"))
}

func TestImportFailedRefreshExpiresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	expired := false
	c := New(srv.URL, "stale", "also-stale")
	c.OnSessionExpired = func() { expired = true }

	path := writeTempImport(t, "staff.xlsx", "workbook bytes")
	_, err := c.ImportEmployees(context.Background(), path)
	require.Error(t, err)
	assert.True(t, expired)
	assert.Equal(t, "", c.Token())
}

func TestImportRejectsOversizedFile(t *testing.T) {
	path := writeTempImport(t, "huge.xlsx", strings.Repeat("x", MaxImportSize+1))
	c := New("http://unused.invalid", "tok", "")

	_, err := c.ImportEmployees(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10MB")
}
