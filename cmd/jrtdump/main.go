// jrtdump - inspect compiler-emitted class-layout images
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/srijs/rustretto/jrt"
	"github.com/srijs/rustretto/layout"
)

func main() {
	verbose := flag.Bool("v", false, "Print slot symbols and resolution state")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jrtdump [options] image\n\n")
		fmt.Fprintf(os.Stderr, "Prints the class, vtable and itable layouts in a layout image.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "jrtdump: %s\n", err)
		os.Exit(1)
	}

	img, err := layout.UnmarshalImage(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jrtdump: %s\n", err)
		os.Exit(1)
	}

	symbols := jrt.Natives()
	tables, err := layout.NewLoader().Resolve(img, symbols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jrtdump: %s\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(img.Classes))
	classes := make(map[string]*layout.ClassLayout, len(img.Classes))
	for i := range img.Classes {
		c := &img.Classes[i]
		names = append(names, c.Name)
		classes[c.Name] = c
	}
	sort.Strings(names)

	fmt.Printf("image version %d, %d classes\n", img.Version, len(names))
	for _, name := range names {
		c := classes[name]
		vt := tables[name]

		fmt.Printf("\nclass %s", c.Name)
		if c.Super != "" {
			fmt.Printf(" extends %s", c.Super)
		}
		fmt.Printf("\n  fields: %d bytes, vtable: %d slots\n", c.FieldSize, vt.Length())

		if *verbose {
			for _, slot := range c.Slots {
				state := "abstract"
				if _, ok := symbols[slot.Symbol]; ok {
					state = "native"
				}
				fmt.Printf("  [%3d] %s (%s)\n", slot.Index, slot.Symbol, state)
			}
		}
		for _, entry := range c.Interfaces {
			fmt.Printf("  implements %s at slot %d\n", entry.Name, entry.Offset)
		}
	}
}
