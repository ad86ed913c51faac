// Command osterrain50build converts an extracted OS Terrain 50 data
// directory into a single OSTerrain50.bin random-access file.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/bobosola/osterrain50/internal/terrain50"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: osterrain50build [flags] <data-dir>\n\n"+
			"data-dir must contain a data/<tile>/ subtree per the OS Terrain 50 layout.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}
	dataDir := args[0]

	start := time.Now()
	outputPath, stats, err := terrain50.BuildOutputFile(dataDir)
	if err != nil {
		glog.Exitf("building output file: %v", err)
	}

	glog.Infof("wrote %s (%d tiles, %d bytes of sample data, %d sub-tiles skipped) in %s",
		outputPath, stats.TilesWritten, stats.BytesWritten, stats.SkippedTiles, time.Since(start))
}
