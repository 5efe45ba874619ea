// filepath: cmd/gamelog/main.go
package main

import "gamelog/internal/cli"

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
