package loader_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/citynet/core"
	"github.com/katalvlaran/citynet/loader"
)

func ExampleApply() {
	recs, err := loader.ParsePaths(strings.NewReader("York\tLeeds\t26\nLeeds\tHull\t60\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	g := core.NewGraph()
	rep, _ := loader.Apply(g, recs)
	fmt.Println(g.Vertices(), rep.EdgesAdded, rep.DuplicateCities)

	_ = loader.WritePaths(os.Stdout, g)
	// Output:
	// [York Leeds Hull] 2 1
	// York	Leeds	26
	// Leeds	Hull	60
}
