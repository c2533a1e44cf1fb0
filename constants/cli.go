package constants

// CLI Commands
const (
	CmdServe   = "serve"
	CmdFetch   = "fetch"
	CmdVersion = "version"
)

// CLI Short Descriptions
const (
	DescRoot    = "Marketplace listings adapter for customer-messaging integrations"
	DescServe   = "Serve the fetch-listings endpoint locally"
	DescFetch   = "Query the marketplace once and print the flattened listings"
	DescVersion = "Print the version"
)

// CLI Flags
const (
	FlagConfig = "config"
	FlagDebug  = "debug"
	FlagAddr   = "addr"
	FlagEngine = "engine"
	FlagPretty = "pretty"
)

// JSONIndent is used for pretty-printed CLI output.
const JSONIndent = "  "
