// Package browse implements the client-side state machine behind every
// catalog view: a paginated collection cache with optimistic mutations, a
// search-by-id side channel, and relation resolution for owner entities.
//
// [Controller] keeps one page of a remote collection plus its pagination
// metadata. Mutations patch the cached page locally instead of re-fetching:
// a successful create appends to the page, an update replaces the matching
// item in place, and a delete removes it. The item counts are deliberately
// NOT reconciled after create/delete; they drift until the next full page
// load. Page loads carry a per-controller generation so a slow response that
// settles after a newer request is discarded rather than applied.
//
// [Lookup] fetches one entity by identifier outside the page cache with its
// own success/failure state. A failed lookup clears the previously resolved
// entity; a successful lookup never feeds the page cache.
//
// [Resolver] fetches the dependent collection of a resolved owner (an
// artist's songs, an album's songs, a playlist's entries) via a server-side
// filter. Its view keeps the related items and the fetch error as separate
// fields so an empty collection is distinguishable from a failed fetch.
package browse
