// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the largering library: the segmented large ring
// buffer interface, the pluggable clear-strategy contract, and the
// structured error types shared across packages.
package api
