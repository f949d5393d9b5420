package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	tablecryptVersion = "0.1.0"
)

func main() {
	newBuild().Execute()
}

func newBuild() *Build {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	tablecrypt := NewAppBuild("tablecrypt", "cmd/tablecrypt", tablecryptVersion)
	tablecrypt.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", tablecryptVersion).
			Env("CGO_ENABLED", "0")
	})
	tablecrypt.Variant("windows", "amd64")
	tablecrypt.Variant("linux", "amd64")
	tablecrypt.Variant("linux", "arm64")
	tablecrypt.Variant("darwin", "arm64")
	b.ImportApp(tablecrypt)
	return b
}
