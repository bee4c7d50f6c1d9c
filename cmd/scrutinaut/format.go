package main

import (
	"fmt"

	"github.com/fwojciec/scrutinaut"
	"github.com/fwojciec/scrutinaut/etree"
	"github.com/fwojciec/scrutinaut/gopretty"
)

// newEncoder returns the session encoder for an output format name.
func newEncoder(format string) (scrutinaut.SessionEncoder, error) {
	switch format {
	case "", "json":
		return &scrutinaut.JSONEncoder{}, nil
	case "indent":
		return &scrutinaut.JSONEncoder{Indent: "  "}, nil
	case "table":
		return gopretty.NewEncoder(), nil
	case "xml":
		return etree.NewEncoder(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
