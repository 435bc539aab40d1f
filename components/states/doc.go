// Package states serves the US state reference list as JSON options for form
// inputs, with case-insensitive search over state codes and names.
//
// The default handler responds to GET and HEAD requests. An empty query
// returns the whole list (up to the limit) so the handler can back a plain
// select element as well as a typeahead.
package states
