// Package types defines the request parameters and response records of the
// rippled JSON-RPC interface, plus the primitive value types they are built
// from. Response field names are kept bit-exact with the node's output,
// mixed case included, and amounts that can exceed native number precision
// are carried as arbitrary-precision decimals.
package types
