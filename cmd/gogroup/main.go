package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"

	"github.com/2x3systems/gogroup/gogroup"
	"github.com/2x3systems/gogroup/libgroup"
	"github.com/2x3systems/gogroup/libgroup/catalog"
)

var catalogPath = flag.String("catalog", "", "path to a group catalog db (empty runs in-memory)")

func main() {

	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, `usage: gogroup "<generator expression>" ...`)
		fmt.Fprintln(os.Stderr, `   ex: gogroup "(1 2 3); (2 3)"`)
		os.Exit(2)
	}

	cat, err := catalog.OpenCatalog(catalog.Opts{
		DBPath: *catalogPath,
	})
	if err != nil {
		klog.Fatalf("opening catalog: %v", err)
	}
	defer cat.Close()

	for _, expr := range flag.Args() {
		G, err := libgroup.NewGroupFromExpr(expr)
		if err != nil {
			klog.Errorf("%q: %v", expr, err)
			continue
		}
		printGroup(expr, G, cat)
	}

	klog.Flush()
}

func printGroup(expr string, G *libgroup.Group, cat gogroup.Identifier) {
	info := G.Info()
	desig, found, err := cat.Identify(&info)
	if err != nil {
		klog.Errorf("identifying %q: %v", expr, err)
	}
	if !found {
		desig = "(unidentified)"
	}

	fmt.Printf("%s\n    %s  %v\n", expr, desig, G)
	if !G.IsAbelian() {
		center, _ := G.Center()
		fmt.Printf("    center: %v  derived: %v\n", center, G.DerivedSubgroup())
	}
}
