package codejen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

// HeaderMapper returns a FileMapper that prepends the standard "Code
// generated" marker to every .go file, naming the given generator. Files
// that already start with the marker are left untouched.
func HeaderMapper(generator string) FileMapper {
	header := fmt.Sprintf("// Code generated by %s. DO NOT EDIT.\n\n", generator)
	return func(f File) (File, error) {
		if !strings.HasSuffix(f.RelativePath, ".go") || bytes.HasPrefix(f.Data, []byte(header)) {
			return f, nil
		}
		f.Data = append([]byte(header), f.Data...)
		return f, nil
	}
}

// GofmtMapper returns a FileMapper that formats every .go file with gofmt.
// A file that does not parse fails the whole generation.
func GofmtMapper() FileMapper {
	return func(f File) (File, error) {
		if !strings.HasSuffix(f.RelativePath, ".go") {
			return f, nil
		}
		data, err := format.Source(f.Data)
		if err != nil {
			return f, fmt.Errorf("gofmt %s: %w", f.RelativePath, err)
		}
		f.Data = data
		return f, nil
	}
}
