// Package lowcode is a Go client for the LowCode API.
//
// A Client stores the bearer token and base URL and hands out one module per
// API area:
//
//	client, err := lowcode.NewClient(os.Getenv("LOWCODE_TOKEN"))
//	if err != nil {
//		return err
//	}
//	status, err := client.Bots().GetBotStatus(ctx, 123)
//
// Every module method returns the decoded JSON object as a Response or one of
// the typed errors defined in this package. Each accessor call builds a fresh
// module instance; all instances created from one Client share its HTTP
// connection pool.
package lowcode

const (
	// Version of the SDK, sent in the User-Agent header
	Version = "0.1.0"

	// DefaultBaseURL is used when WithBaseURL is not given
	DefaultBaseURL = "https://api.lowcodeapilib.com"
)
