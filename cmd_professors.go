package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"educonnect/fixtures"
	"educonnect/services"
)

func newProfessorsCmd(a *app) *cobra.Command {
	var query, field string
	var listFields bool

	cmd := &cobra.Command{
		Use:   "professors",
		Short: "Search the professor directory",
		Example: `  educonnect professors -q stanford
  educonnect professors --field "Machine Learning"
  educonnect professors --fields`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := fixtures.Professors()
			if err != nil {
				a.logger.Error("[professors] Could not load directory: %v", err)
				return err
			}

			w := out(cmd)
			if listFields {
				for _, f := range services.Fields(all) {
					fmt.Fprintln(w, f)
				}
				return nil
			}

			matches := services.FilterProfessors(all, query, strings.TrimSpace(field))
			a.logger.Debug("[professors] %d of %d professors match", len(matches), len(all))
			if len(matches) == 0 {
				fmt.Fprintln(w, "No professors match your search.")
				return nil
			}
			for _, p := range matches {
				fmt.Fprintf(w, "%s  %.1f★\n", p.Name, p.Rating)
				fmt.Fprintf(w, "  %s, %s (%s)\n", p.Department, p.University, p.Country)
				fmt.Fprintf(w, "  Field: %s · %d open position(s)\n", p.Field, p.Positions)
				if len(p.Specializations) > 0 {
					fmt.Fprintf(w, "  %s\n", strings.Join(p.Specializations, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search name, university and field")
	cmd.Flags().StringVar(&field, "field", "", "Exact research field")
	cmd.Flags().BoolVar(&listFields, "fields", false, "List the research fields and exit")
	return cmd
}
