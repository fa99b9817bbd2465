//go:build !js || !wasm

package main

// No page URL outside the browser
func QueryValue(key string) string {
	return ""
}
