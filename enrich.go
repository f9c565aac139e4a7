/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/Seednode/clapboard/games/clapboard"
	"github.com/spf13/cobra"
)

type enrichConfig struct {
	catalog     string
	nominations string
	output      string
	top         int
}

// newEnrichCmd rewrites the oscarWins field of a catalog from an Academy
// Awards nominations dump keyed by TMDB id.
func newEnrichCmd() *cobra.Command {
	ec := &enrichConfig{}
	v := newViper()

	cmd := &cobra.Command{
		Use:   "enrich-oscars",
		Short: "Fill in Oscar win counts of a movie catalog.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrich(cmd, ec)
		},
	}

	fs := cmd.Flags()

	fs.StringVarP(&ec.catalog, "catalog", "c", "", "path to movie catalog json (env: CLAPBOARD_CATALOG)")
	fs.StringVarP(&ec.nominations, "nominations", "n", "", "path to oscar nominations json (env: CLAPBOARD_NOMINATIONS)")
	fs.StringVarP(&ec.output, "output", "o", "", "path to write the enriched catalog, defaults to --catalog (env: CLAPBOARD_OUTPUT)")
	fs.IntVar(&ec.top, "top", 10, "number of most awarded movies to list (env: CLAPBOARD_TOP)")

	bindEnv(v, fs)

	return cmd
}

func runEnrich(cmd *cobra.Command, ec *enrichConfig) error {
	if ec.catalog == "" || ec.nominations == "" {
		return errors.New("both --catalog and --nominations must be provided")
	}

	catalog, err := clapboard.LoadCatalogFile(ec.catalog)
	if err != nil {
		return err
	}

	f, err := os.Open(ec.nominations)
	if err != nil {
		return err
	}
	defer f.Close()

	noms, err := clapboard.LoadNominations(f)
	if err != nil {
		return err
	}

	movies := catalog.Movies()
	enriched := clapboard.EnrichOscarWins(movies, noms)

	data, err := json.MarshalIndent(movies, "", "  ")
	if err != nil {
		return err
	}

	output := ec.output
	if output == "" {
		output = ec.catalog
	}

	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Enriched %d out of %d movies with Oscar wins data.\n", enriched, len(movies))

	slices.SortStableFunc(movies, func(a, b clapboard.Movie) int {
		return b.OscarWins - a.OscarWins
	})

	top := max(0, min(ec.top, len(movies)))

	fmt.Fprintf(out, "\nTop %d most Oscar-winning movies in the catalog:\n", top)
	for _, m := range movies[:top] {
		fmt.Fprintf(out, "  %d wins - %s\n", m.OscarWins, m.Title)
	}

	return nil
}
