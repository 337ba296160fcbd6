// Package faunakit is a thin convenience layer over the FaunaDB Go driver.
//
// Every operation composes one FQL expression from the driver's
// query-builder primitives and submits it through the driver's network
// client. Responses and errors come back exactly as the engine produced
// them: the package adds no retries, no caching, no validation and no error
// taxonomy of its own.
package faunakit
