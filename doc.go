// Package sieve contains the core components of Sieve, a library for the exact-match
// indexing and retrieval of rule rows. This root package defines types which are
// employed during the regular use of the library, as well as in the extension of
// the library, and is an excellent overview of Sieve's key concepts.
package sieve
