package cmd

import (
	"fmt"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/news"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "View FHNW news and events",
	Long: `Fetch the latest university news or upcoming events, with optional
filtering by school (news) or location (events).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showEvents, _ := cmd.Flags().GetBool("events")
		facetFilter, _ := cmd.Flags().GetString("filter")
		oldestFirst, _ := cmd.Flags().GetBool("asc")
		listFacets, _ := cmd.Flags().GetBool("facets")
		limit, _ := cmd.Flags().GetInt("limit")

		kind := news.KindNews
		if showEvents {
			kind = news.KindEvents
		}

		client := news.NewClient()
		var raw []news.RawItem
		var total int
		var err error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching %s...", kind)).
			Action(func() {
				if showEvents {
					raw, total, err = client.FetchEvents()
				} else {
					raw, total, err = client.FetchNews()
				}
			}).
			Run()

		if err != nil {
			return fmt.Errorf("could not fetch %s: %w", kind, err)
		}

		items := news.Normalize(raw, kind)

		if listFacets {
			facetName := "Schools"
			if showEvents {
				facetName = "Locations"
			}
			fmt.Printf("\n--- %s ---\n", facetName)
			for _, facet := range news.Facets(items) {
				fmt.Printf("• %s\n", facet)
			}
			return nil
		}

		items = news.FilterByFacet(items, facetFilter)
		news.SortByDate(items, oldestFirst)

		if len(items) == 0 {
			fmt.Println("Nothing found.")
			return nil
		}

		titleStyle := lipgloss.NewStyle().Bold(true)
		metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

		shown := 0
		for _, item := range items {
			if limit > 0 && shown >= limit {
				break
			}
			shown++

			dateStr := "date unknown"
			if !item.Date.IsZero() {
				dateStr = item.Date.Format("02.01.2006 15:04")
			}

			fmt.Printf("\n%s\n", titleStyle.Render(item.Title))
			fmt.Printf("%s\n", metaStyle.Render(fmt.Sprintf("%s | %s", dateStr, item.Facet)))
			if item.Description != "" {
				fmt.Printf("%s\n", item.Description)
			}
			fmt.Printf("%s\n", metaStyle.Render(item.Link))
		}

		fmt.Printf("\nShowing %d of %d upstream items.\n", shown, total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newsCmd)
	newsCmd.Flags().BoolP("events", "e", false, "Show events instead of news")
	newsCmd.Flags().StringP("filter", "f", "", "Filter by school (news) or location (events)")
	newsCmd.Flags().Bool("asc", false, "Sort oldest first instead of newest first")
	newsCmd.Flags().Bool("facets", false, "List the available filter values and exit")
	newsCmd.Flags().IntP("limit", "n", 10, "Maximum number of items to print (0 = all)")
}
