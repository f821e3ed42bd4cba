//go:build fixnarrow
// +build fixnarrow

package fix

// EnabledWidths are the containers NewDescriptor may resolve to.
const EnabledWidths = W32 | W64
