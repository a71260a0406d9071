// Command herodex browses and edits an in-memory catalogue of superheroes.
package main

import "github.com/mesh-intelligence/herodex/internal/cli"

func main() {
	cli.Execute()
}
