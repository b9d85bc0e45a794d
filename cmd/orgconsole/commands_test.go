package main

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgconsole/internal/apiclient"
	"orgconsole/internal/middleware"
	"orgconsole/internal/stubserver"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupCLI points the console at a seeded in-memory backend through the
// environment, the way an operator would configure it.
func setupCLI(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(stubserver.New(stubserver.Seeded()).Router())
	t.Cleanup(srv.Close)

	tok, err := middleware.GenerateToken(3, "admin", 1)
	require.NoError(t, err)

	t.Setenv("API_BASE_URL", srv.URL+"/api/v1")
	t.Setenv("API_TOKEN", tok)
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "cli.log"))
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	root := rootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func cliClient() *apiclient.Client {
	return apiclient.New(os.Getenv("API_BASE_URL"), os.Getenv("API_TOKEN"), "")
}

func TestSitesCreateCommand(t *testing.T) {
	setupCLI(t)

	err := runCLI(t, "sites", "create",
		"--name", "Riverside Plant", "--code", "rp",
		"--address", "9 River Road", "--city", "Nashik",
		"--state", "Maharashtra", "--pincode", "422001")
	require.NoError(t, err)

	sites, _, err := cliClient().ListSites(context.Background(), nil)
	require.NoError(t, err)
	var created bool
	for _, s := range sites {
		if s.SiteCode == "rp" {
			created = true
			assert.Equal(t, "Riverside Plant", s.SiteName)
			assert.Equal(t, "India", s.Country, "country falls back to the form default")
		}
	}
	assert.True(t, created)
}

func TestSitesCreateReportsFieldErrors(t *testing.T) {
	setupCLI(t)

	err := runCLI(t, "sites", "create", "--name", "Riverside Plant")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site_code")
	assert.Contains(t, err.Error(), "pincode")

	sites, _, err := cliClient().ListSites(context.Background(), nil)
	require.NoError(t, err)
	for _, s := range sites {
		assert.NotEqual(t, "Riverside Plant", s.SiteName, "an invalid draft never reaches the backend")
	}
}

func TestDepartmentsCreateChecksSiteAgainstOwnOrganization(t *testing.T) {
	setupCLI(t)

	err := runCLI(t, "departments", "create",
		"--site", "999", "--name", "Platform", "--code", "plt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in your organization")
}

func TestDepartmentsCreateCommand(t *testing.T) {
	setupCLI(t)

	sites, _, err := cliClient().ListSites(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, sites)

	err = runCLI(t, "departments", "create",
		"--site", strconv.Itoa(sites[0].ID), "--name", "Platform", "--code", "plt")
	require.NoError(t, err)

	depts, _, err := cliClient().ListDepartments(context.Background(), nil)
	require.NoError(t, err)
	var created bool
	for _, d := range depts {
		if d.DepartmentName == "Platform" {
			created = true
			assert.Equal(t, "PLT", d.DepartmentCode, "codes are uppercased on submit")
			assert.Equal(t, sites[0].ID, d.SiteID)
		}
	}
	assert.True(t, created)
}
