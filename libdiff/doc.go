// Package libdiff computes, reverses and applies differences between
// bunches.
package libdiff
