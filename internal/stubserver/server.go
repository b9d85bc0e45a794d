package stubserver

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"orgconsole/internal/middleware"
)

// Server is the in-memory stand-in for the org backend. It implements the
// slice of the REST contract the console exercises: auth, per-entity CRUD
// with pagination and tenant scoping, the department hierarchy, and the
// employee import/export endpoints.
type Server struct {
	store *Store
}

func New(store *Store) *Server {
	return &Server{store: store}
}

// Router wires every route under /api/v1, mirroring the backend contract.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(ginlog.SetLogger(ginlog.WithLogger(func(_ *gin.Context, l zerolog.Logger) zerolog.Logger {
		return l.With().Str("component", "stub-server").Logger()
	})))

	api := r.Group("/api/v1")

	// Auth routes
	api.POST("/auth/login", s.login)
	api.POST("/auth/refresh", s.refreshToken)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/organizations", s.listOrganizations)

		authed.GET("/sites", s.listSites)
		authed.GET("/sites/:id", s.getSite)
		authed.POST("/sites", s.createSite)
		authed.PUT("/sites/:id", s.updateSite)
		authed.DELETE("/sites/:id", s.deleteSite)

		authed.GET("/departments", s.listDepartments)
		authed.GET("/departments/hierarchy", s.departmentHierarchy)
		authed.GET("/departments/:id", s.getDepartment)
		authed.POST("/departments", s.createDepartment)
		authed.PUT("/departments/:id", s.updateDepartment)
		authed.DELETE("/departments/:id", s.deleteDepartment)

		authed.GET("/designations", s.listDesignations)
		authed.GET("/designations/:id", s.getDesignation)
		authed.POST("/designations", s.createDesignation)
		authed.PUT("/designations/:id", s.updateDesignation)
		authed.DELETE("/designations/:id", s.deleteDesignation)

		authed.GET("/employees", s.listEmployees)
		authed.GET("/employees/export", s.exportEmployees)
		authed.GET("/employees/:id", s.getEmployee)
		authed.POST("/employees", s.createEmployee)
		authed.POST("/employees/import", s.importEmployees)
		authed.PUT("/employees/:id", s.updateEmployee)
		authed.DELETE("/employees/:id", s.deleteEmployee)

		authed.GET("/zones", s.listZones)
		authed.GET("/zones/:id", s.getZone)
		authed.POST("/zones", s.createZone)
		authed.PUT("/zones/:id", s.updateZone)
		authed.DELETE("/zones/:id", s.deleteZone)

		authed.GET("/locations", s.listLocations)
		authed.POST("/locations", s.createLocation)
		authed.PUT("/locations/:id", s.updateLocation)
		authed.DELETE("/locations/:id", s.deleteLocation)

		authed.GET("/gateways", s.listGateways)
		authed.GET("/gateways/:id", s.getGateway)
		authed.POST("/gateways", s.createGateway)
		authed.PUT("/gateways/:id", s.updateGateway)
		authed.DELETE("/gateways/:id", s.deleteGateway)
	}

	return r
}

// Handler wraps the router with CORS for serving browsers directly.
func (s *Server) Handler() http.Handler {
	return middleware.EnableCORS(s.Router())
}
