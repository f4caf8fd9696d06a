package cmd

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/vstask/internal/version"
)

func printVersion(w io.Writer, prog string) {
	fmt.Fprintln(w, version.GetInfo().Line(prog))
}
