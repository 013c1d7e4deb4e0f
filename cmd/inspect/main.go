package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"school-renderer/internal/layout"
	"school-renderer/internal/scene"
)

func main() {
	format := flag.String("format", "summary", "Output: summary, yaml or json")
	steps := flag.Int("steps", layout.DefaultStepCount, "Steps per staircase")
	flag.Parse()

	plan := layout.ReferencePlan()
	plan.Stairs.StepCount = *steps
	s := scene.New(layout.Assemble(plan))

	var err error
	switch *format {
	case "summary":
		printSummary(s.Primitives)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		err = enc.Encode(s)
		if err == nil {
			err = enc.Close()
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(s)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(b layout.Building) {
	fmt.Printf("Primitives: %d\n", len(b))

	floors := b.CountByFloor()
	for _, k := range []layout.FloorKind{layout.Ground, layout.Basement, layout.Second} {
		fmt.Printf("  %-9s %3d  (y offset %+.1f)\n", k, floors[k], k.YOffset())
	}

	groups := b.CountByGroup()
	keys := make([]layout.GroupKind, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Printf("  %-10s %3d\n", k, groups[k])
	}

	lo, hi := b.Bounds()
	fmt.Printf("BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	fmt.Printf("Size: %.2f x %.2f x %.2f\n", hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])

	if err := b.Validate(); err != nil {
		fmt.Printf("Warnings:\n%v\n", err)
	}
}
