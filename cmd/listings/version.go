package main

import (
	"github.com/spf13/cobra"

	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/utils"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   constants.CmdVersion,
		Short: constants.DescVersion,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			utils.User("%s %s", constants.ServiceName, constants.ServiceVersion)
		},
	}
}
