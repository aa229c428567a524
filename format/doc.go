// Package format enumerates the output formats a VDF tree can be rendered in.
package format
