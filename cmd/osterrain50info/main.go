// Command osterrain50info inspects an OSTerrain50.bin file's header: its
// signature, populated-tile count, and nearest-populated-tile diagnostics.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/bobosola/osterrain50/internal/coordparse"
	"github.com/bobosola/osterrain50/internal/coverage"
	"github.com/bobosola/osterrain50/internal/grid"
	"github.com/bobosola/osterrain50/internal/terrain50"
)

func main() {
	var (
		binPath string
		nearest string
	)
	flag.StringVar(&binPath, "bin", "OSTerrain50.bin", "path to the OSTerrain50.bin file")
	flag.StringVar(&nearest, "nearest", "", "report the nearest populated tile to this coordinate")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: osterrain50info [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	f, err := os.Open(binPath)
	if err != nil {
		glog.Exitf("opening %s: %v", binPath, err)
	}
	defer f.Close()

	buf := make([]byte, terrain50.HeaderSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		glog.Exitf("reading header: %v", err)
	}
	header, err := terrain50.DeserializeHeader(buf)
	if err != nil {
		glog.Exitf("parsing header: %v", err)
	}

	idx := coverage.Build(header)
	fmt.Printf("signature: %s\n", terrain50.Signature)
	fmt.Printf("populated 100km tiles: %d / %d\n", idx.PopulatedTileCount(), len(grid.GRID100Order))

	if nearest != "" {
		coord, err := coordparse.Parse(nearest)
		if err != nil {
			glog.Exitf("parsing -nearest coordinate: %v", err)
		}
		id, dist, ok := idx.NearestPopulatedTile(coord.Easting, coord.Northing)
		if !ok {
			fmt.Println("no populated tiles in this file")
			return
		}
		fmt.Printf("nearest populated tile to (%d,%d): %s (%.0fm away)\n", coord.Easting, coord.Northing, id, dist)
	}
}
