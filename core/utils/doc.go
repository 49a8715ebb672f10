// Package utils provides lenient type conversion helpers for loosely typed
// upstream JSON, where the same field may arrive as a number or as a string.
package utils
