package apiclient

import (
	"context"
	"fmt"
	"strconv"

	"orgconsole/internal/models"
)

// ParseID guards every by-id operation; non-numeric ids never reach the
// backend.
func ParseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid id %q", id)
	}
	return n, nil
}

// ── Organizations ──

func (c *Client) ListOrganizations(ctx context.Context, raw Params) ([]models.Organization, Pagination, error) {
	return getList[models.Organization](ctx, c, "/organizations", raw)
}

// ── Sites ──

func (c *Client) ListSites(ctx context.Context, raw Params) ([]models.Site, Pagination, error) {
	return getList[models.Site](ctx, c, "/sites", raw)
}

func (c *Client) GetSite(ctx context.Context, id int) (models.Site, error) {
	return getOne[models.Site](ctx, c, fmt.Sprintf("/sites/%d", id))
}

func (c *Client) CreateSite(ctx context.Context, payload map[string]interface{}) (models.Site, error) {
	return create[models.Site](ctx, c, "/sites", payload)
}

func (c *Client) UpdateSite(ctx context.Context, id int, payload map[string]interface{}) (models.Site, error) {
	return update[models.Site](ctx, c, fmt.Sprintf("/sites/%d", id), payload)
}

func (c *Client) DeleteSite(ctx context.Context, id int) error {
	return remove(ctx, c, fmt.Sprintf("/sites/%d", id))
}

// ── Departments ──

func (c *Client) ListDepartments(ctx context.Context, raw Params) ([]models.Department, Pagination, error) {
	return getList[models.Department](ctx, c, "/departments", raw)
}

func (c *Client) GetDepartment(ctx context.Context, id int) (models.Department, error) {
	return getOne[models.Department](ctx, c, fmt.Sprintf("/departments/%d", id))
}

// GetDepartmentHierarchy returns the department tree for one organization.
func (c *Client) GetDepartmentHierarchy(ctx context.Context, orgID int) ([]models.DepartmentNode, error) {
	var env listEnvelope[models.DepartmentNode]
	params := Params{"organization_id": orgID}
	if err := c.do(ctx, "GET", "/departments/hierarchy", NormalizeParams(params), nil, &env, true); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) CreateDepartment(ctx context.Context, payload map[string]interface{}) (models.Department, error) {
	return create[models.Department](ctx, c, "/departments", payload)
}

func (c *Client) UpdateDepartment(ctx context.Context, id int, payload map[string]interface{}) (models.Department, error) {
	return update[models.Department](ctx, c, fmt.Sprintf("/departments/%d", id), payload)
}

func (c *Client) DeleteDepartment(ctx context.Context, id int) error {
	return remove(ctx, c, fmt.Sprintf("/departments/%d", id))
}

// ── Designations ──

func (c *Client) ListDesignations(ctx context.Context, raw Params) ([]models.Designation, Pagination, error) {
	return getList[models.Designation](ctx, c, "/designations", raw)
}

func (c *Client) GetDesignation(ctx context.Context, id int) (models.Designation, error) {
	return getOne[models.Designation](ctx, c, fmt.Sprintf("/designations/%d", id))
}

func (c *Client) CreateDesignation(ctx context.Context, payload map[string]interface{}) (models.Designation, error) {
	return create[models.Designation](ctx, c, "/designations", payload)
}

func (c *Client) UpdateDesignation(ctx context.Context, id int, payload map[string]interface{}) (models.Designation, error) {
	return update[models.Designation](ctx, c, fmt.Sprintf("/designations/%d", id), payload)
}

func (c *Client) DeleteDesignation(ctx context.Context, id int) error {
	return remove(ctx, c, fmt.Sprintf("/designations/%d", id))
}

// ── Employees ──

func (c *Client) ListEmployees(ctx context.Context, raw Params) ([]models.Employee, Pagination, error) {
	return getList[models.Employee](ctx, c, "/employees", raw)
}

func (c *Client) GetEmployee(ctx context.Context, id int) (models.Employee, error) {
	return getOne[models.Employee](ctx, c, fmt.Sprintf("/employees/%d", id))
}

func (c *Client) CreateEmployee(ctx context.Context, payload map[string]interface{}) (models.Employee, error) {
	return create[models.Employee](ctx, c, "/employees", payload)
}

func (c *Client) UpdateEmployee(ctx context.Context, id int, payload map[string]interface{}) (models.Employee, error) {
	return update[models.Employee](ctx, c, fmt.Sprintf("/employees/%d", id), payload)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	return remove(ctx, c, fmt.Sprintf("/employees/%d", id))
}

// ── Zones & Locations ──

func (c *Client) ListZones(ctx context.Context, raw Params) ([]models.Zone, Pagination, error) {
	return getList[models.Zone](ctx, c, "/zones", raw)
}

func (c *Client) GetZone(ctx context.Context, id int) (models.Zone, error) {
	return getOne[models.Zone](ctx, c, fmt.Sprintf("/zones/%d", id))
}

func (c *Client) CreateZone(ctx context.Context, payload map[string]interface{}) (models.Zone, error) {
	return create[models.Zone](ctx, c, "/zones", payload)
}

func (c *Client) UpdateZone(ctx context.Context, id int, payload map[string]interface{}) (models.Zone, error) {
	return update[models.Zone](ctx, c, fmt.Sprintf("/zones/%d", id), payload)
}

func (c *Client) DeleteZone(ctx context.Context, id int) error {
	return remove(ctx, c, fmt.Sprintf("/zones/%d", id))
}

func (c *Client) ListLocations(ctx context.Context, raw Params) ([]models.Location, Pagination, error) {
	return getList[models.Location](ctx, c, "/locations", raw)
}

func (c *Client) CreateLocation(ctx context.Context, payload map[string]interface{}) (models.Location, error) {
	return create[models.Location](ctx, c, "/locations", payload)
}

func (c *Client) UpdateLocation(ctx context.Context, id int, payload map[string]interface{}) (models.Location, error) {
	return update[models.Location](ctx, c, fmt.Sprintf("/locations/%d", id), payload)
}

func (c *Client) DeleteLocation(ctx context.Context, id int) error {
	return remove(ctx, c, fmt.Sprintf("/locations/%d", id))
}

// ── Gateways ──

func (c *Client) ListGateways(ctx context.Context, raw Params) ([]models.Gateway, Pagination, error) {
	return getList[models.Gateway](ctx, c, "/gateways", raw)
}

func (c *Client) GetGateway(ctx context.Context, id int) (models.Gateway, error) {
	return getOne[models.Gateway](ctx, c, fmt.Sprintf("/gateways/%d", id))
}

func (c *Client) CreateGateway(ctx context.Context, payload map[string]interface{}) (models.Gateway, error) {
	return create[models.Gateway](ctx, c, "/gateways", payload)
}

func (c *Client) UpdateGateway(ctx context.Context, id int, payload map[string]interface{}) (models.Gateway, error) {
	return update[models.Gateway](ctx, c, fmt.Sprintf("/gateways/%d", id), payload)
}

func (c *Client) DeleteGateway(ctx context.Context, id int) error {
	return remove(ctx, c, fmt.Sprintf("/gateways/%d", id))
}
