// cmd/seqgen/main.go
package main

import (
	"seqgen/internal/app"
	"seqgen/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
