package main

import (
	"fmt"
	"path"
	"text/tabwriter"

	"github.com/freelancehub/backend/internal/interfaces/http/handler"
	"github.com/freelancehub/backend/internal/interfaces/http/router"
	"github.com/spf13/cobra"
)

// routesCmd lists the API surface without starting the server
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List API routes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		groups := router.APIGroups(router.Handlers{
			Kanban:    handler.NewKanbanHandler(nil),
			Project:   handler.NewProjectHandler(nil, 0),
			Dashboard: handler.NewDashboardHandler(nil),
			Profile:   handler.NewProfileHandler(nil),
			System:    handler.NewSystemHandler("fhctl", "", nil),
		})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "GROUP\tMETHOD\tPATH")
		for _, g := range groups {
			for _, route := range g.Routes() {
				var method, p string
				if _, err := fmt.Sscan(route, &method, &p); err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", g.Name(), method, path.Join("/api/v1", p))
			}
		}
		return w.Flush()
	},
}
