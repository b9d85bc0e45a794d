package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"orgconsole/internal/apiclient"
	"orgconsole/internal/console/forms"
	"orgconsole/internal/console/hierarchy"
	"orgconsole/internal/console/listview"
	"orgconsole/internal/geo"
	"orgconsole/internal/models"
)

type listFlags struct {
	page     int
	pageSize int
	search   string
	status   string
	siteID   string
}

func (lf *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&lf.page, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&lf.pageSize, "page-size", 10, "records per page")
	cmd.Flags().StringVar(&lf.search, "search", "", "filter the fetched page")
	cmd.Flags().StringVar(&lf.status, "status", "all", "active filter: all, true, false")
	cmd.Flags().StringVar(&lf.siteID, "site", "all", "site id filter")
}

// runList wires one resource listing through a list controller so the CLI
// exercises the same pagination/filter/search path the dashboard uses.
func runList[T any](ctx context.Context, sess *session, lf listFlags, fetch listview.FetchFunc[T], fields listview.SearchFieldsFunc[T], render func([]T)) error {
	ctrl := listview.New(sess.claims, lf.pageSize, fetch, fields)

	if lf.status != "all" {
		if err := ctrl.SetFilter(ctx, "is_active", lf.status); err != nil {
			return errors.New(ctrl.ErrMsg())
		}
	}
	if lf.siteID != "all" {
		if err := ctrl.SetFilter(ctx, "site_id", lf.siteID); err != nil {
			return errors.New(ctrl.ErrMsg())
		}
	}
	if err := ctrl.SetPage(ctx, lf.page); err != nil {
		return errors.New(ctrl.ErrMsg())
	}
	ctrl.SetSearchTerm(lf.search)

	render(ctrl.VisibleItems())
	fmt.Printf("\npage %d of %d (%d records)\n", ctrl.Page(), ctrl.TotalPages(), ctrl.TotalItems())
	return nil
}

// formErrors flattens a form's field errors into one error, fields in
// stable order so the output is deterministic.
func formErrors(errs forms.Errors) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, errs[f])
	}
	return errors.New(strings.Join(msgs, ", "))
}

func sitesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "sites", Short: "Manage sites"}
	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List sites",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			return runList(c.Context(), sess, lf, sess.client.ListSites,
				func(s models.Site) []string { return []string{s.SiteName, s.SiteCode, s.City} },
				func(items []models.Site) {
					rows := make([][]string, 0, len(items))
					for _, s := range items {
						rows = append(rows, []string{strconv.Itoa(s.ID), s.SiteName, s.SiteCode, s.City, activeLabel(s.IsActive)})
					}
					table([]string{"ID", "NAME", "CODE", "CITY", "STATUS"}, rows)
				})
		},
	}
	lf.register(list)

	var sf struct {
		name, code, address, city, state, country, pincode string
		inactive                                           bool
	}
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a site",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			orgID, err := sess.claims.OrgID()
			if err != nil {
				return err
			}

			form := forms.NewSiteForm(nil)
			form.Draft.OrganizationID = orgID
			form.Draft.SiteName = sf.name
			form.Draft.SiteCode = sf.code
			form.Draft.Address = sf.address
			form.Draft.City = sf.city
			form.Draft.State = sf.state
			if sf.country != "" {
				form.Draft.Country = sf.country
			}
			form.Draft.Pincode = sf.pincode
			form.Draft.IsActive = !sf.inactive

			if errs := form.Validate(); len(errs) > 0 {
				return formErrors(errs)
			}
			site, err := sess.client.CreateSite(c.Context(), form.Payload())
			if err != nil {
				return errors.New(apiclient.FormatError(err))
			}
			fmt.Printf("created site %d (%s)\n", site.ID, site.SiteCode)
			return nil
		},
	}
	create.Flags().StringVar(&sf.name, "name", "", "site name")
	create.Flags().StringVar(&sf.code, "code", "", "site code")
	create.Flags().StringVar(&sf.address, "address", "", "street address")
	create.Flags().StringVar(&sf.city, "city", "", "city")
	create.Flags().StringVar(&sf.state, "state", "", "state")
	create.Flags().StringVar(&sf.country, "country", "", "country (defaults to India)")
	create.Flags().StringVar(&sf.pincode, "pincode", "", "6-digit pincode")
	create.Flags().BoolVar(&sf.inactive, "inactive", false, "create the site as inactive")

	cmd.AddCommand(list, create)
	return cmd
}

func departmentsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "departments", Short: "Manage departments"}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			return runList(c.Context(), sess, lf, sess.client.ListDepartments,
				func(d models.Department) []string { return []string{d.DepartmentName, d.DepartmentCode} },
				func(items []models.Department) {
					rows := make([][]string, 0, len(items))
					for _, d := range items {
						rows = append(rows, []string{strconv.Itoa(d.ID), d.DepartmentName, d.DepartmentCode, strconv.Itoa(d.SiteID), activeLabel(d.IsActive)})
					}
					table([]string{"ID", "NAME", "CODE", "SITE", "STATUS"}, rows)
				})
		},
	}
	lf.register(list)

	tree := &cobra.Command{
		Use:   "tree",
		Short: "Print the department hierarchy",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			orgID, err := sess.claims.OrgID()
			if err != nil {
				return err
			}
			nodes, err := sess.client.GetDepartmentHierarchy(c.Context(), orgID)
			if err != nil {
				return errors.New(apiclient.FormatError(err))
			}
			state := hierarchy.NewTreeState(nodes)
			state.ExpandAll()
			printTree(nodes, 0)
			fmt.Printf("\n%d departments\n", state.Count())
			return nil
		},
	}

	var df struct {
		site, parent string
		name, code   string
		description  string
	}
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a department",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			orgID, err := sess.claims.OrgID()
			if err != nil {
				return err
			}
			siteID, err := apiclient.ParseID(df.site)
			if err != nil {
				return err
			}

			// The site picker is the second level of the organization → site
			// chain; only sites the token's organization owns are selectable.
			chain := listview.NewCascade(
				listview.NewLevel("organization", func(ctx context.Context, _ int) ([]listview.Option, error) {
					orgs, _, err := sess.client.ListOrganizations(ctx, nil)
					if err != nil {
						return nil, err
					}
					opts := make([]listview.Option, 0, len(orgs))
					for _, o := range orgs {
						opts = append(opts, listview.Option{ID: o.ID, Label: o.Name})
					}
					return opts, nil
				}),
				listview.NewLevel("site", func(ctx context.Context, parentID int) ([]listview.Option, error) {
					sites, _, err := sess.client.ListSites(ctx, apiclient.Params{"organization_id": parentID, "pageSize": 100})
					if err != nil {
						return nil, err
					}
					opts := make([]listview.Option, 0, len(sites))
					for _, s := range sites {
						opts = append(opts, listview.Option{ID: s.ID, Label: s.SiteName})
					}
					return opts, nil
				}),
			)
			if err := chain.Select(c.Context(), 0, orgID); err != nil {
				return errors.New(apiclient.FormatError(err))
			}
			selectable := false
			for _, opt := range chain.Options(1) {
				if opt.ID == siteID {
					selectable = true
					break
				}
			}
			if !selectable {
				return fmt.Errorf("site %d is not in your organization", siteID)
			}

			form := forms.NewDepartmentForm(nil)
			form.Draft.OrganizationID = orgID
			form.Draft.SiteID = siteID
			form.Draft.DepartmentName = df.name
			form.Draft.DepartmentCode = df.code
			form.Draft.Description = df.description
			if df.parent != "" {
				parentID, err := apiclient.ParseID(df.parent)
				if err != nil {
					return err
				}
				form.Draft.ParentDepartmentID = parentID
			}

			if errs := form.Validate(); len(errs) > 0 {
				return formErrors(errs)
			}
			dept, err := sess.client.CreateDepartment(c.Context(), form.Payload())
			if err != nil {
				return errors.New(apiclient.FormatError(err))
			}
			fmt.Printf("created department %d (%s)\n", dept.ID, dept.DepartmentCode)
			return nil
		},
	}
	create.Flags().StringVar(&df.site, "site", "", "site id the department belongs to")
	create.Flags().StringVar(&df.name, "name", "", "department name")
	create.Flags().StringVar(&df.code, "code", "", "department code")
	create.Flags().StringVar(&df.parent, "parent", "", "parent department id")
	create.Flags().StringVar(&df.description, "description", "", "description")
	_ = create.MarkFlagRequired("site")

	cmd.AddCommand(list, tree, create)
	return cmd
}

func printTree(nodes []models.DepartmentNode, depth int) {
	for _, node := range nodes {
		fmt.Printf("%s- %s (%s)\n", strings.Repeat("  ", depth), node.DepartmentName, node.DepartmentCode)
		printTree(node.Children, depth+1)
	}
}

func designationsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "designations", Short: "Manage designations"}
	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List designations",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			return runList(c.Context(), sess, lf, sess.client.ListDesignations,
				func(d models.Designation) []string { return []string{d.DesignationName, d.DesignationCode} },
				func(items []models.Designation) {
					rows := make([][]string, 0, len(items))
					for _, d := range items {
						rows = append(rows, []string{strconv.Itoa(d.ID), d.DesignationName, d.DesignationCode, strconv.Itoa(d.Level), activeLabel(d.IsActive)})
					}
					table([]string{"ID", "NAME", "CODE", "LEVEL", "STATUS"}, rows)
				})
		},
	}
	lf.register(list)
	cmd.AddCommand(list)
	return cmd
}

func employeesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "employees", Short: "Manage employees"}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			return runList(c.Context(), sess, lf, sess.client.ListEmployees,
				func(e models.Employee) []string {
					return []string{e.FirstName, e.LastName, e.Email, e.EmployeeCode}
				},
				func(items []models.Employee) {
					rows := make([][]string, 0, len(items))
					for _, e := range items {
						rows = append(rows, []string{e.EmployeeCode, e.FirstName + " " + e.LastName, e.Email, e.EmploymentType})
					}
					table([]string{"CODE", "NAME", "EMAIL", "TYPE"}, rows)
				})
		},
	}
	lf.register(list)

	var importFile string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk import employees from an Excel or CSV file",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			result, err := sess.client.ImportEmployees(c.Context(), importFile)
			if err != nil {
				return errors.New(apiclient.FormatError(err))
			}
			fmt.Printf("%d rows: %d imported, %d failed\n", result.TotalRows, result.SuccessCount, result.ErrorCount)
			for _, re := range result.Errors {
				fmt.Printf("  row %d: %s\n", re.Row, re.Error)
			}
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "path to the .xlsx or .csv file")
	_ = importCmd.MarkFlagRequired("file")

	var exportFormat, exportOut string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Download the employee export",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			blob, err := sess.client.ExportEmployees(c.Context(), exportFormat, []string{"personal", "employment"}, nil)
			if err != nil {
				return errors.New(apiclient.FormatError(err))
			}
			if err := os.WriteFile(exportOut, blob, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %d bytes to %s\n", len(blob), exportOut)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "excel", "excel or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "employees.xlsx", "output file")

	cmd.AddCommand(list, importCmd, exportCmd)
	return cmd
}

func zonesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "zones", Short: "Manage geofence zones"}
	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List zones",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			return runList(c.Context(), sess, lf, sess.client.ListZones,
				func(z models.Zone) []string { return []string{z.ZoneName, z.ZoneType} },
				func(items []models.Zone) {
					rows := make([][]string, 0, len(items))
					for _, z := range items {
						rows = append(rows, []string{strconv.Itoa(z.ID), z.ZoneName, z.ZoneType, strconv.Itoa(z.SiteID), activeLabel(z.IsActive)})
					}
					table([]string{"ID", "NAME", "TYPE", "SITE", "STATUS"}, rows)
				})
		},
	}
	lf.register(list)
	cmd.AddCommand(list)
	return cmd
}

func gatewaysCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "gateways", Short: "Manage LoRaWAN gateways"}
	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List gateways",
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			return runList(c.Context(), sess, lf, sess.client.ListGateways,
				func(g models.Gateway) []string { return []string{g.Name, g.GatewayEUI} },
				func(items []models.Gateway) {
					rows := make([][]string, 0, len(items))
					for _, g := range items {
						seen := "never"
						if g.MinutesSinceSeen != nil {
							seen = fmt.Sprintf("%dm ago", *g.MinutesSinceSeen)
						}
						rows = append(rows, []string{strconv.Itoa(g.ID), g.Name, forms.FormatEUI(g.GatewayEUI), seen})
					}
					table([]string{"ID", "NAME", "EUI", "LAST SEEN"}, rows)
				})
		},
	}
	lf.register(list)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one gateway and the geofence locations covering its position",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := apiclient.ParseID(args[0])
			if err != nil {
				return err
			}
			sess, err := connect(c.Context())
			if err != nil {
				return err
			}
			gw, err := sess.client.GetGateway(c.Context(), id)
			if err != nil {
				return errors.New(apiclient.FormatError(err))
			}

			fmt.Printf("%s  %s  %s\n", gw.Name, forms.FormatEUI(gw.GatewayEUI), activeLabel(gw.IsActive))
			if gw.Latitude == nil || gw.Longitude == nil {
				fmt.Println("no GPS position reported")
				return nil
			}
			fmt.Printf("position: %f, %f\n", *gw.Latitude, *gw.Longitude)

			locations, _, err := sess.client.ListLocations(c.Context(), apiclient.Params{"pageSize": 100})
			if err != nil {
				return errors.New(apiclient.FormatError(err))
			}
			covering := geo.CoveringLocations(gw, locations)
			if len(covering) == 0 {
				fmt.Println("no geofence location covers this position")
				return nil
			}
			for _, loc := range covering {
				fmt.Printf("inside %s (radius %.0fm)\n", loc.LocationName, loc.RadiusMeters)
			}
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
