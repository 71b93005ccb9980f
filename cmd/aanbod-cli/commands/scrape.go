package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	autoscout_adapter "github.com/hendrikderyck/steven-car-company/internal/adapters/autoscout"
	rabbitmq_adapter "github.com/hendrikderyck/steven-car-company/internal/adapters/rabbitmq"
	"github.com/hendrikderyck/steven-car-company/internal/configs"
	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/core/usecase"
	"github.com/spf13/cobra"
)

var (
	scrapeDealerURL *string
	scrapeMaxPages  *int
	scrapeCars      *bool
)

func init() {
	scrapeDealerURL = scrapeCmd.Flags().String("dealer-url", constants.DealerURL, "dealer index URL to scrape")
	scrapeMaxPages = scrapeCmd.Flags().Int("max-pages", constants.DefaultMaxPages, "pagination safety cap")
	scrapeCars = scrapeCmd.Flags().Bool("cars", false, "output the published car view instead of raw records")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--dealer-url <url>] [--max-pages <n>] [--cars]",
	Short: "Runs the full extraction pipeline and prints the result as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		cfg := configs.ScraperConfig{
			DealerURL: *scrapeDealerURL,
			MaxPages:  *scrapeMaxPages,
			BatchSize: constants.DefaultBatchSize,
		}
		pipeline := usecase.NewFetchAllListingsUseCase(
			autoscout_adapter.NewAdapter(),
			rabbitmq_adapter.NoopQueueAdapter{},
			cfg,
		)

		started := time.Now()
		var output interface{}

		if *scrapeCars {
			cars, err := usecase.NewBuildCarsUseCase(pipeline).Execute(ctx)
			if err != nil {
				return err
			}
			output = cars
		} else {
			records, err := pipeline.Execute(ctx)
			if err != nil {
				return err
			}
			output = records
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "done in %.1fs\n", time.Since(started).Seconds())
		return nil
	},
}
