// Package pluralkit provides a client for the PluralKit v2 REST API.
//
// Every API call goes through a single request pipeline that handles
// authentication, rate limiting, error classification and schema-driven
// response decoding. The per-resource methods on Client are thin wrappers
// over that pipeline.
//
// # Features
//
//   - Token-bucket rate limiting matching the documented API budget
//   - Bearer-token authentication with local fail-fast for write endpoints
//   - Typed API errors carrying HTTP status, API code and field-level detail
//   - Schema-validated decoding of responses into typed records
//   - Tri-state PATCH payloads distinguishing "unchanged" from "cleared"
//   - Context-aware operations for graceful cancellation
//
// # Usage
//
//	client, err := pluralkit.NewClient(token, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	system, err := client.GetSystem(ctx, "exmpl")
//	if system == nil && err == nil {
//	    // no such system
//	}
//
// Clients constructed without a token are restricted to endpoints that do
// not require authentication.
package pluralkit
