// Package platform holds OS-specific naming and path rules that must be
// applied for a target OS other than the host, for example when judging a
// Windows path catalogued on a Linux build agent.
package platform
