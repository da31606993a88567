// Package term implements the tcell-backed terminal backend.
package term
