// Package http provides the HTTP surface for the nosvault file store.
//
// The surface is deliberately small:
//
//	GET /<path>        public download, content type by extension
//	PUT /<pubkey>      authenticated upload into the key's namespace
//	OPTIONS /<any>     204 with CORS headers
//
// Uploads carry an "Authorization: Nostr <base64(event)>" header; the
// service layer verifies the event signature and the namespace
// ownership rule. Error bodies are a single plain-text line naming the
// failure category, never the underlying cause.
//
// CORS is handled by go-chi/cors; the default configuration allows any
// origin with the GET, PUT and OPTIONS methods and the Content-Type and
// Authorization headers.
package http
