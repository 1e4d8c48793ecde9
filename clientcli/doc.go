// Package clientcli implements the nosvault client: profile-based
// configuration stored in ~/.nosvault/config.yaml and an HTTP client
// that signs uploads with the profile's Nostr secret key.
package clientcli
