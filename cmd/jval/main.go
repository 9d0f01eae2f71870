// Copyright (C) 2026 M. Palmer. All Rights Reserved.

// Program jval parses a JSON file and prints its canonical compact form on
// stdout. On a parse failure it prints a two-element array of the error
// message and source line, and exits nonzero.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/mpalmer/jval"
	"github.com/mpalmer/jval/ast"
)

var stripComments = flag.Bool("strip-comments", false,
	"Standardize JWCC input (comments, trailing commas) before parsing")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: jval [-strip-comments] <JSONFILE>")
		os.Exit(1)
	}
	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *stripComments {
		std, err := hujson.Standardize(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		data = std
	}

	v, err := ast.Parse(bytes.NewReader(data))
	if err != nil {
		line, msg := 0, err.Error()
		var pe *jval.ParseError
		if errors.As(err, &pe) {
			line, msg = pe.Line, pe.Message
		}
		fmt.Println(ast.Array{ast.String(msg), ast.Number(line)}.JSON())
		os.Exit(1)
	}
	if err := ast.Print(os.Stdout, v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println()
}
