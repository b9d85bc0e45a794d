package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"orgconsole/internal/apiclient"
	"orgconsole/internal/authtoken"
	"orgconsole/internal/config"
	"orgconsole/internal/logger"
)

// session is everything a command needs once the operator is logged in.
type session struct {
	client *apiclient.Client
	claims authtoken.Claims
}

var (
	flagEmail    string
	flagPassword string
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "orgconsole",
		Short:         "Terminal console for the org admin backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagEmail, "email", "", "login email (overrides API_TOKEN)")
	root.PersistentFlags().StringVar(&flagPassword, "password", "", "login password")

	root.AddCommand(
		sitesCmd(),
		departmentsCmd(),
		designationsCmd(),
		employeesCmd(),
		zonesCmd(),
		gatewaysCmd(),
	)
	return root
}

// connect builds the API client from env/flags and decodes the token's
// tenant claims.
func connect(ctx context.Context) (*session, error) {
	cfg := config.Load()
	logger.Setup(cfg.LogFile)

	client := apiclient.New(cfg.APIBaseURL, cfg.Token, cfg.RefreshTok)
	client.OnSessionExpired = func() {
		fmt.Fprintln(os.Stderr, "session expired – log in again with --email/--password")
	}

	if flagEmail != "" {
		if err := client.Login(ctx, flagEmail, flagPassword); err != nil {
			return nil, fmt.Errorf("login failed: %s", apiclient.FormatError(err))
		}
	}
	if client.Token() == "" {
		return nil, fmt.Errorf("no token: set API_TOKEN or pass --email/--password")
	}

	claims, err := authtoken.Decode(client.Token())
	if err != nil {
		return nil, fmt.Errorf("could not decode token: %w", err)
	}
	if _, err := claims.OrgID(); err != nil {
		return nil, err
	}
	return &session{client: client, claims: claims}, nil
}

// table renders rows with aligned columns to stdout.
func table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	printRow(w, header)
	for _, row := range rows {
		printRow(w, row)
	}
	w.Flush()
}

func printRow(w *tabwriter.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}
