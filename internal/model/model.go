// Package model defines the request and response payloads of the API.
//
// Requests implement binding.Payload and carry their own defaults.
// Responses are fixed-shape structs; the JSON field order matches the
// declaration order.
package model
