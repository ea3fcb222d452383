// Command gaingrn provides a CLI for GAIN-domain detection and
// reference-residue indexing.
//
// Usage:
//
//	gaingrn [command] [options]
//
// Commands:
//
//	boundaries  Detect the domain start and subdomain boundary
//	segments    Group the secondary-structure elements of a domain
//	index       Assign the consensus nomenclature for one sequence
//	quality     Extract alignment-column conservation values
//	version     Show version information
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gph82/GAIN-GRN/pkg/gaingrn"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "boundaries":
		boundariesCmd(os.Args[2:])
	case "segments":
		segmentsCmd(os.Args[2:])
	case "index":
		indexCmd(os.Args[2:])
	case "quality":
		qualityCmd(os.Args[2:])
	case "version":
		fmt.Println(gaingrn.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`GAIN-GRN - GAIN domain structural indexing

Usage:
  gaingrn <command> [options]

Commands:
  boundaries  Detect the domain start and subdomain boundary
  segments    Group the secondary-structure elements of a domain
  index       Assign the consensus nomenclature for one sequence
  quality     Extract alignment-column conservation values
  version     Show version information
  help        Show this help message

Use "gaingrn <command> -h" for more information about a command.`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func readStrideInputs(stridePath, fastaPath string) (gaingrn.SSEMap, gaingrn.Letters, gaingrn.FastaEntry) {
	sses, err := gaingrn.ReadStride(stridePath)
	if err != nil {
		fatal("Error reading STRIDE file: %v", err)
	}
	letters, err := gaingrn.ReadStrideLetters(stridePath)
	if err != nil {
		fatal("Error reading STRIDE assignments: %v", err)
	}
	entries, err := gaingrn.ReadFASTA(fastaPath)
	if err != nil {
		fatal("Error reading FASTA file: %v", err)
	}
	if len(entries) == 0 {
		fatal("Error: %s contains no sequences", fastaPath)
	}
	return sses, letters, entries[0]
}

func boundariesCmd(args []string) {
	fs := flag.NewFlagSet("boundaries", flag.ExitOnError)
	stridePath := fs.String("stride", "", "STRIDE output file")
	fastaPath := fs.String("fasta", "", "FASTA file with the target sequence")
	fs.Parse(args)

	if *stridePath == "" || *fastaPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -stride and -fasta are required")
		fs.Usage()
		os.Exit(1)
	}

	sses, _, entry := readStrideInputs(*stridePath, *fastaPath)
	start, bnd, ok := gaingrn.DetectBoundaries(sses, len(entry.Sequence))
	if !ok {
		fmt.Println("No GAIN domain detected.")
		os.Exit(2)
	}
	fmt.Printf("Domain start:       %d\n", start)
	fmt.Printf("Subdomain boundary: %d\n", bnd)
}

func segmentsCmd(args []string) {
	fs := flag.NewFlagSet("segments", flag.ExitOnError)
	stridePath := fs.String("stride", "", "STRIDE output file")
	fastaPath := fs.String("fasta", "", "FASTA file with the target sequence")
	rough := fs.Bool("rough", false, "print the rough per-residue naming scheme")
	fs.Parse(args)

	if *stridePath == "" || *fastaPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -stride and -fasta are required")
		fs.Usage()
		os.Exit(1)
	}

	sses, letters, entry := readStrideInputs(*stridePath, *fastaPath)
	dom, err := gaingrn.DetectDomain(entry.Name, entry.Sequence, sses, letters)
	if err != nil {
		if errors.Is(err, gaingrn.ErrNotADomain) {
			fmt.Println("No GAIN domain detected.")
			os.Exit(2)
		}
		fatal("Error: %v", err)
	}

	fmt.Printf("%s: domain %d..%d, boundary %d\n", dom.Name, dom.Start, dom.End, dom.Boundary)
	fmt.Printf("Subdomain A helices (%d):\n", len(dom.Helices))
	for i, el := range dom.Helices {
		fmt.Printf("  H%-2d %v breaks=%v\n", i+1, el, el.Breaks)
	}
	fmt.Printf("Subdomain B sheets (%d):\n", len(dom.Sheets))
	for i, el := range dom.Sheets {
		fmt.Printf("  S%-2d %v breaks=%v\n", i+1, el, el.Breaks)
	}

	if *rough {
		for i, label := range dom.RoughLabels() {
			fmt.Printf("%4d  %s\n", dom.Start+i, label)
		}
	}
}

// anchorFile is the curated anchor table: alignment columns, occupation
// weights, and the boundary column separating helix from sheet anchors.
type anchorFile struct {
	Columns        []int     `json:"columns"`
	Occupations    []float64 `json:"occupations"`
	BoundaryColumn int       `json:"boundary_column"`
}

func indexCmd(args []string) {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	stridePath := fs.String("stride", "", "STRIDE output file")
	fastaPath := fs.String("fasta", "", "FASTA file with the target sequence")
	alignPath := fs.String("alignment", "", "reference alignment (FASTA)")
	anchorPath := fs.String("anchors", "", "curated anchor table (JSON)")
	cutoff := fs.Int("cutoff", -1, "last alignment column to read")
	gpsFlag := fs.String("gps", "", "comma-separated GPS residue numbers (GPS-2,GPS-1,GPS+1)")
	mode := fs.String("split", "single", "ambiguity split mode: single or double")
	long := fs.Bool("long", false, "print the line-per-residue listing")
	fs.Parse(args)

	if *stridePath == "" || *fastaPath == "" || *alignPath == "" || *anchorPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -stride, -fasta, -alignment and -anchors are required")
		fs.Usage()
		os.Exit(1)
	}

	sses, letters, entry := readStrideInputs(*stridePath, *fastaPath)

	alignment, err := gaingrn.ReadAlignment(*alignPath, *cutoff)
	if err != nil {
		fatal("Error reading alignment: %v", err)
	}

	raw, err := os.ReadFile(*anchorPath)
	if err != nil {
		fatal("Error reading anchor table: %v", err)
	}
	var af anchorFile
	if err := json.Unmarshal(raw, &af); err != nil {
		fatal("Error parsing anchor table: %v", err)
	}
	anchors, err := gaingrn.NewAnchors(af.Columns, af.Occupations, af.BoundaryColumn)
	if err != nil {
		fatal("Error building anchor table: %v", err)
	}

	var gps []int
	if *gpsFlag != "" {
		for _, field := range strings.Split(*gpsFlag, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				fatal("Error: bad GPS residue %q", field)
			}
			gps = append(gps, n)
		}
	}

	dom, err := gaingrn.DetectDomain(entry.Name, entry.Sequence, sses, letters)
	if err != nil {
		if errors.Is(err, gaingrn.ErrNotADomain) {
			fmt.Println("No GAIN domain detected.")
			os.Exit(2)
		}
		fatal("Error: %v", err)
	}

	columns, err := gaingrn.MapToAlignment(dom.Name, dom.Sequence, alignment)
	if err != nil {
		fatal("Error mapping to alignment: %v", err)
	}

	splitMode := gaingrn.SplitSingle
	if *mode == "double" {
		splitMode = gaingrn.SplitDouble
	}
	idx := gaingrn.Index(dom, columns, anchors, gaingrn.Options{Mode: splitMode, GPS: gps})

	fmt.Printf("%s: %d segments indexed, %d unindexed\n", dom.Name, len(idx.Segments), len(idx.Unindexed))
	for label, el := range idx.Segments {
		fmt.Printf("  %-4s %v  (%s.50 @ %d)\n", label, el, label, idx.Centers[label+".50"])
	}
	if len(idx.Unindexed) > 0 {
		fmt.Printf("Unindexed element start columns: %v\n", idx.Unindexed)
	}
	if *long {
		if err := idx.WriteLong(os.Stdout, dom.Name, dom.Sequence, dom.Start, 0); err != nil {
			fatal("Error writing listing: %v", err)
		}
	}
}

func qualityCmd(args []string) {
	fs := flag.NewFlagSet("quality", flag.ExitOnError)
	annotPath := fs.String("annotation", "", "Jalview annotation export")
	fs.Parse(args)

	if *annotPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -annotation is required")
		fs.Usage()
		os.Exit(1)
	}

	values, err := gaingrn.ReadQuality(*annotPath)
	if err != nil {
		fatal("Error reading annotation: %v", err)
	}
	for col, v := range values {
		fmt.Printf("%d\t%.3f\n", col, v)
	}
}
