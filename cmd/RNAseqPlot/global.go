package main

var (
	// PaletteRows holds the embedded etc/palette.txt overrides.
	PaletteRows []map[string]string
	chanList    chan bool
)
