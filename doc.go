// Package nosvault implements a per-identity public file store.
//
// Clients holding a Nostr keypair may upload files into the single
// directory named by their public key, authenticated by a signed Nostr
// event carried in the Authorization header. Anyone may download any
// stored file; reads are deliberately public.
//
// # Key Components
//
//   - Verifier: validates the "Nostr <base64(event)>" credential and
//     extracts the authenticated public key
//   - OwnsNamespace: the ownership rule binding a public key to its
//     single writable path segment
//   - Service: orchestrates verification, authorization and storage
//     for uploads, and storage plus content-type derivation for reads
//   - FileStorage: interface for the on-disk backend (see the
//     filesystem package)
//
// See the http package for the REST surface and the clientcli package
// for a signing client.
package nosvault
