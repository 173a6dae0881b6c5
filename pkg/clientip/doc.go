// Package clientip resolves the address of the client behind reverse
// proxies and carries it through the request context.
//
// Headers are consulted in order and the first valid address wins;
// RemoteAddr is the fallback. The default order suits a Cloudflare or
// nginx front:
//
//  1. CF-Connecting-IP
//  2. X-Forwarded-For (first valid entry)
//  3. X-Real-IP
//  4. RemoteAddr
//
// Only trust these headers when the proxy in front of the server
// overwrites them. Otherwise pass no headers to New so the TCP peer is
// used.
package clientip
