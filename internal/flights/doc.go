// Package flights talks to the flight search backend. It posts filters,
// retries transient failures, caches result pages and tracks pagination.
package flights
