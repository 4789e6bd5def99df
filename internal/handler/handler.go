// Package handler is the first layer after the router.
//
// It binds request bodies through the binding package, calls the
// service layer and writes JSON responses.
package handler
