// Package types defines the interfaces shared by the sdcops packages.
package types
