//go:build js && wasm

package main

import (
	"net/url"
	"syscall/js"
)

// QueryValue reads a parameter from the page URL, e.g. ?seed=42
func QueryValue(key string) string {
	search := js.Global().Get("window").Get("location").Get("search").String()
	if len(search) > 0 && search[0] == '?' {
		search = search[1:]
	}
	values, err := url.ParseQuery(search)
	if err != nil {
		return ""
	}
	return values.Get(key)
}
