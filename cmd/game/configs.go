package main

import "embed"

// configFS holds the shipped physics, entities and level files
//
//go:embed configs
var configFS embed.FS
