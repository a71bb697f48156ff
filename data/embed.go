// Package data provides the embedded default configuration.
package data

import "embed"

// dataFS embeds the default YAML configuration at build time.
//
//go:embed *.yaml
var dataFS embed.FS

// FS returns the embedded filesystem containing the default configuration.
func FS() embed.FS {
	return dataFS
}

// DefaultConfig returns the raw bytes of pixelabyss.yaml.
func DefaultConfig() []byte {
	b, err := dataFS.ReadFile("pixelabyss.yaml")
	if err != nil {
		panic(err)
	}
	return b
}
