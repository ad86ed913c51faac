// Command osterrain50query looks up elevations for one or more BNG
// coordinates against an OSTerrain50.bin file, optionally infilling a
// polyline at ~50 m spacing between them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/bobosola/osterrain50/internal/coordparse"
	"github.com/bobosola/osterrain50/internal/infill"
	"github.com/bobosola/osterrain50/internal/terrain50"
)

func main() {
	var (
		binPath     string
		doInfill    bool
		concurrency int
	)
	flag.StringVar(&binPath, "bin", "OSTerrain50.bin", "path to the OSTerrain50.bin file")
	flag.BoolVar(&doInfill, "infill", false, "synthesize intermediate points at ~50m spacing along the coordinate list")
	flag.IntVar(&concurrency, "concurrency", 4, "number of concurrent elevation lookups")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: osterrain50query [flags] <coord> [coord...]\n\n"+
			"Each coord is a numeric pair (\"485669, 92167\") or an alphanumeric\n"+
			"BNG reference (\"SZ 8554 9214\").\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	inputs := flag.Args()
	if len(inputs) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	coords, err := coordparse.ParseAll(inputs)
	if err != nil {
		glog.Exitf("parsing coordinates: %v", err)
	}
	coords = infill.Expand(coords, doInfill)

	r, err := terrain50.Open(binPath)
	if err != nil {
		glog.Exitf("opening %s: %v", binPath, err)
	}
	defer r.Close()

	elevations, err := readConcurrently(r, coords, concurrency)
	if err != nil {
		glog.Exitf("reading elevations: %v", err)
	}

	for _, c := range elevations {
		fmt.Printf("%d,%d\t%.1f\n", c.Easting, c.Northing, c.Elevation)
	}
}

// readConcurrently resolves each coordinate's elevation using up to
// concurrency workers. The Reader's file handle is safe for concurrent
// ReadAt calls, so only the result slice needs protecting from races,
// which per-index writes already avoid.
func readConcurrently(r *terrain50.Reader, coords []terrain50.Coord, concurrency int) ([]terrain50.Coord, error) {
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i := range coords {
		i := i
		g.Go(func() error {
			elev, err := r.ReadElevation(coords[i].Easting, coords[i].Northing)
			if err != nil {
				return err
			}
			coords[i].Elevation = elev
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return coords, nil
}
