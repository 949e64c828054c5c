package codejen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/matryer/is"
)

func TestFilesValidate(t *testing.T) {
	is := is.New(t)
	is.NoErr(Files{{RelativePath: "a.go"}, {RelativePath: "b/a.go"}}.Validate())

	err := Files{{RelativePath: "a.go"}, {RelativePath: "a.go"}}.Validate()
	is.True(err != nil)

	abs, _ := filepath.Abs("a.go")
	err = Files{{RelativePath: abs}}.Validate()
	is.True(err != nil)
}

func TestFSAdd(t *testing.T) {
	is := is.New(t)
	fs := NewFS()
	is.NoErr(fs.Add(File{RelativePath: "b.go", Data: []byte("b")}, File{RelativePath: "a.go", Data: []byte("a")}))
	is.Equal(fs.Len(), 2)

	err := fs.Add(File{RelativePath: "a.go", Data: []byte("again")})
	is.True(err != nil)
	f, ok := fs.Get("a.go")
	is.True(ok)
	is.Equal(string(f.Data), "a") // conflicting add must not overwrite

	fl := fs.AsFiles()
	is.Equal(len(fl), 2)
	is.Equal(fl[0].RelativePath, "a.go")
	is.Equal(fl[1].RelativePath, "b.go")
}

func TestFSMerge(t *testing.T) {
	is := is.New(t)
	one, two := NewFS(), NewFS()
	is.NoErr(one.Add(File{RelativePath: "one.go"}))
	is.NoErr(two.Add(File{RelativePath: "two.go"}))
	is.NoErr(one.Merge(two))
	is.Equal(one.Len(), 2)
	is.True(one.Merge(two) != nil) // two.go is already there
}

func TestFSWriteAndVerify(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	fs := NewFS()
	is.NoErr(fs.Add(
		File{RelativePath: "finisher/finisher2.go", Data: []byte("package finisher\n")},
		File{RelativePath: "result/zip_gen.go", Data: []byte("package result\n")},
	))

	// nothing on disk yet
	err := fs.Verify(ctx, dir)
	is.True(err != nil)
	var merr *multierror.Error
	is.True(errors.As(err, &merr))
	is.Equal(len(merr.Errors), 2)
	var missing *ShouldExistErr
	is.True(errors.As(merr.Errors[0], &missing))
	is.Equal(missing.Path, filepath.Join(dir, "finisher", "finisher2.go"))

	is.NoErr(fs.Write(ctx, dir))
	is.NoErr(fs.Verify(ctx, dir))

	data, err := os.ReadFile(filepath.Join(dir, "result", "zip_gen.go"))
	is.NoErr(err)
	is.Equal(string(data), "package result\n")

	// writing again is idempotent
	is.NoErr(fs.Write(ctx, dir))
	is.NoErr(fs.Verify(ctx, dir))

	// hand edits are reported with a diff
	path := filepath.Join(dir, "result", "zip_gen.go")
	is.NoErr(os.WriteFile(path, []byte("package edited\n"), 0o644))
	err = fs.Verify(ctx, dir)
	var differ *ContentsDifferErr
	is.True(errors.As(err, &differ))
	is.Equal(differ.Path, path)
	is.True(strings.Contains(differ.Diff, "-package edited"))
	is.True(strings.Contains(differ.Diff, "+package result"))
}

func TestHeaderMapper(t *testing.T) {
	is := is.New(t)
	mapper := HeaderMapper("zipgen")

	f, err := mapper(File{RelativePath: "a.go", Data: []byte("package a\n")})
	is.NoErr(err)
	is.Equal(string(f.Data), "// Code generated by zipgen. DO NOT EDIT.\n\npackage a\n")

	again, err := mapper(f)
	is.NoErr(err)
	is.Equal(string(again.Data), string(f.Data))

	txt, err := mapper(File{RelativePath: "listing.txt", Data: []byte("x")})
	is.NoErr(err)
	is.Equal(string(txt.Data), "x")
}

func TestGofmtMapper(t *testing.T) {
	is := is.New(t)
	mapper := GofmtMapper()

	f, err := mapper(File{RelativePath: "a.go", Data: []byte("package a\nfunc  F( ) {\n}\n")})
	is.NoErr(err)
	is.Equal(string(f.Data), "package a\n\nfunc F() {\n}\n")

	_, err = mapper(File{RelativePath: "a.go", Data: []byte("package a\nfunc {")})
	is.True(err != nil)
}
