//go:build !fixnarrow
// +build !fixnarrow

package fix

// EnabledWidths are the containers NewDescriptor may resolve to. Build with
// -tags fixnarrow to restrict them to 32 and 64 bits.
const EnabledWidths = AllWidths
