//go:build !js || !wasm

package main

// Nil for native, the world file comes from -config
func GetEmbeddedWorld() []byte {
	return nil
}

// False for native
func IsEmbedded() bool {
	return false
}
