//go:build js && wasm

package main

import (
	_ "embed"
)

// Embed default world
//
//go:embed world.yaml
var embeddedWorld []byte

// Get embedded world config
// WASM only
func GetEmbeddedWorld() []byte {
	return embeddedWorld
}

// True for WASM
func IsEmbedded() bool {
	return true
}
