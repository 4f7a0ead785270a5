// Package web hosts the browser-facing marketing site.
//
// The root handler mounts every registered module under its prefix, serves
// embedded assets under /static/, and wraps the result in the shared
// middleware chain: panic recovery, request ids, tracing, and access logs.
package web
