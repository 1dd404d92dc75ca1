package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/culturecoders/culturebot/internal/catalog"
	"github.com/culturecoders/culturebot/internal/model"
)

var (
	factsCountry  string
	factsCategory string
	factsJSON     bool
)

// factsCmd represents the facts command
var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Explore the built-in cultural fact catalog",
}

var factsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List facts, optionally filtered by country or category",
	Long: `List facts from the catalog. A country filter takes precedence over a
category filter; both match whole names, ignoring case.

Example:
  culturebot facts list --country japan
  culturebot facts list --category business --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return err
		}

		facts := cat.Filter(factsCountry, factsCategory)
		if factsJSON {
			return printJSON(cmd.OutOrStdout(), facts)
		}
		return printFacts(cmd.OutOrStdout(), facts)
	},
}

var factsRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random fact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return err
		}

		fact := cat.Random(nil)
		if factsJSON {
			return printJSON(cmd.OutOrStdout(), fact)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n  Source: %s\n", fact.Country, fact.Category, fact.Text, fact.Source)
		return nil
	},
}

var factsCountriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the countries in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return err
		}
		return printNames(cmd.OutOrStdout(), cat.Countries())
	},
}

var factsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return err
		}
		return printNames(cmd.OutOrStdout(), cat.Categories())
	},
}

var factsProfileCmd = &cobra.Command{
	Use:   "profile <country>",
	Short: "Show the extended profile of a country",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := catalog.LoadProfiles()
		if err != nil {
			return err
		}

		profile, err := profiles.Profile(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(profiles.Countries(), ", "))
		}

		if factsJSON {
			return printJSON(cmd.OutOrStdout(), profile)
		}
		printProfile(cmd.OutOrStdout(), profile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(factsCmd)
	factsCmd.AddCommand(factsListCmd, factsRandomCmd, factsCountriesCmd, factsCategoriesCmd, factsProfileCmd)

	factsCmd.PersistentFlags().BoolVar(&factsJSON, "json", false, "print JSON")
	factsListCmd.Flags().StringVar(&factsCountry, "country", "", "only facts about this country")
	factsListCmd.Flags().StringVar(&factsCategory, "category", "", "only facts in this category")
}

func printFacts(w io.Writer, facts []model.Fact) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNTRY\tCATEGORY\tFACT\tSOURCE")
	for _, f := range facts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Country, f.Category, f.Text, f.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d fact(s)\n", len(facts))
	return nil
}

func printNames(w io.Writer, names []string) error {
	if factsJSON {
		return printJSON(w, names)
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}

func printProfile(w io.Writer, p model.CountryProfile) {
	fmt.Fprintf(w, "%s (%s)\n", p.Country, p.Continent)
	fmt.Fprintf(w, "  Capital:    %s\n", p.Capital)
	fmt.Fprintf(w, "  Population: %s\n", p.Population)
	fmt.Fprintf(w, "  Currency:   %s\n", p.Currency)
	fmt.Fprintf(w, "  Languages:  %s\n", strings.Join(p.OfficialLanguages, ", "))

	if len(p.Festivals) > 0 {
		fmt.Fprintln(w, "\nFestivals:")
		for _, f := range p.Festivals {
			fmt.Fprintf(w, "  - %s (%s): %s\n", f.Name, f.Season, f.Description)
		}
	}

	if len(p.Locations) > 0 {
		fmt.Fprintln(w, "\nPlaces:")
		for _, l := range p.Locations {
			fmt.Fprintf(w, "  - %s [%s]: %s\n", l.Name, l.Type, l.Description)
		}
	}

	if len(p.Food.PopularDishes) > 0 {
		fmt.Fprintf(w, "\nPopular dishes: %s\n", strings.Join(p.Food.PopularDishes, ", "))
	}
}
