//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of cat-yarn requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/catyarn` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "`go run ./cmd/yarn-sweep` runs headless.")
	os.Exit(2)
}
