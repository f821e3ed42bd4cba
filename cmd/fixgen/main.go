// Command fixgen generates fixed-point descriptor declarations from a YAML
// manifest. See 'fixgen --help'.
package main

import (
	"log"

	"github.com/shabbyrobe/go-fix/internal/gen"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	return gen.NewRootCommand().Execute()
}
