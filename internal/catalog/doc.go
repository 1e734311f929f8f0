// Package catalog implements the HTTP client for the HarmonyHub music
// catalog API.
//
// The API is a paginated REST service: collection reads take page/page_size
// query parameters and answer with a count/results envelope, single-entity
// reads answer with the bare entity, and writes echo the server's
// representation back. Authenticated requests carry an opaque credential in
// an "Authorization: Token <value>" header; the token is obtained once from
// the login endpoint and never refreshed.
//
// [Client] owns transport concerns (base URL, timeout, rate limiting, header
// injection) while [Resource] provides the typed CRUD surface consumed by
// the browse layer.
package catalog
