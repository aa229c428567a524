// Package libdiff computes line oriented differences between VDF documents.
package libdiff
