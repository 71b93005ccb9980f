package commands

import (
	"encoding/json"
	"os"
	"strings"

	autoscout_adapter "github.com/hendrikderyck/steven-car-company/internal/adapters/autoscout"
	"github.com/hendrikderyck/steven-car-company/internal/configs"
	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/usecase"
	"github.com/spf13/cobra"
)

var detailDealerURL *string

func init() {
	detailDealerURL = detailCmd.Flags().String("dealer-url", constants.DealerURL, "dealer index URL to resolve the listing against")
	rootCmd.AddCommand(detailCmd)
}

var detailCmd = &cobra.Command{
	Use:   "detail <listing-url-or-id>",
	Short: "Extracts the detail page content for one listing and prints it as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		listingID := args[0]
		if strings.Contains(listingID, "/") {
			listingID = domain.ExtractListingID(listingID)
		}

		cfg := configs.ScraperConfig{
			DealerURL: *detailDealerURL,
			MaxPages:  constants.DefaultMaxPages,
			BatchSize: constants.DefaultBatchSize,
		}
		detail, err := usecase.NewFetchListingDetailUseCase(autoscout_adapter.NewAdapter(), cfg).Execute(ctx, listingID)
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(detail)
	},
}
