// Package govclient provides the entry point for constructing an identity
// governance API client that implements the governance.Client interface.
//
// It wires configuration and the HTTP transport stack on top of the resource
// interfaces and types defined in the governance package. Most applications
// import govclient to build a client, then reach resource-specific clients
// through it: Identities(), Roles(), Campaigns() and so on.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/governance-client/pkg/governance"
//	  "github.com/fivetwenty-io/governance-client/pkg/govclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := govclient.New(&governance.Config{
//	    BaseURL:  "https://acme.api.example.com",
//	    Token:    "eyJhbGciOi...", // bearer token
//	    TenantID: "acme",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  roles, err := cli.Roles().List(ctx, governance.NewQueryParams().WithFilter("name", "sw", "Admin"))
//	  if err != nil { log.Fatal(err) }
//	  _ = roles
//
//	  // Same connection, another tenant.
//	  other := cli.WithTenant("globex")
//	  _, _ = other.Identities().Get(ctx, "2c9180835d2e5168015d32f890ca1581")
//	}
//
// # Transport
//
// Without Config.Transport the client uses a pooled net/http client from
// go-cleanhttp. Setting Config.MetricsRegisterer instruments that client with
// Prometheus request counters and latency histograms. Config.Debug together
// with Config.Logger logs every round trip without its headers.
//
// # Errors
//
// Any non-2xx response is returned as a *governance.APIError carrying the
// server's message, the HTTP status and an optional machine-readable kind. Use
// governance.AsAPIError, governance.IsNotFound and friends to inspect it.
// Network failures are returned exactly as the transport reported them.
//
// # Helpers
//
// NewWithEndpoint and NewWithToken wrap New with the matching configuration.
package govclient
