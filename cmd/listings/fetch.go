package main

import (
	"github.com/spf13/cobra"

	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/listings"
	"github.com/relevanceai/fetch-listings/utils"
)

// newFetchCmd creates the 'fetch' subcommand, which runs one marketplace query
// and prints the flattened response.
func newFetchCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   constants.CmdFetch,
		Short: constants.DescFetch,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				utils.Error("failed to load config: %v", err)
				exit(1)
				return
			}
			svc, err := listings.New(cfg)
			if err != nil {
				utils.Error("failed to build listings service: %v", err)
				exit(1)
				return
			}
			resp, err := svc.Fetch(cmd.Context())
			if err != nil {
				utils.Error("fetch failed: %v", err)
				exit(1)
				return
			}

			result := utils.MarshalJSON(resp)
			if pretty {
				result = utils.MarshalJSONIndent(resp, constants.JSONIndent)
			}
			if result.Err != nil {
				utils.Error(constants.LogJSONEncodeFailed, result.Err)
				exit(1)
				return
			}
			utils.User("%s", result.Data)
		},
	}
	cmd.Flags().BoolVar(&pretty, constants.FlagPretty, false, "indent the JSON output")
	return cmd
}
