package main

import (
	"fmt"
	"os"

	"github.com/ncruces/zenity"
	"github.com/wholder/dxfreader"
	"github.com/zooyer/golib/xos"
)

const (
	maxSize = 10.0 // inches, downscale above this
	minSize = 0.0  // no upscale floor
)

func pickFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Select a DXF file"),
		zenity.FileFilters{
			{Name: "DXF drawings", Patterns: []string{"*.dxf"}, CaseFold: true},
		},
	)
}

func fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, msg)
	_ = zenity.Error(msg, zenity.Title("dxf2paths"))
	xos.PauseExit()
	os.Exit(1)
}

func main() {
	defer xos.PauseExit()

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else if isTerminal(os.Stdin) {
		fmt.Println("usage: dxf2paths <file.dxf>")
		os.Exit(1)
	} else {
		selected, err := pickFile()
		if err != nil {
			fail("no file selected: %v", err)
		}
		path = selected
	}

	doc, err := dxf.Open(path, maxSize, minSize)
	if err != nil {
		fail("failed to parse %s: %v", path, err)
	}
	if doc.Empty() {
		fail("%s produced no drawable shapes", path)
	}

	fmt.Printf("%s: %d shapes, %s, bounds %.3f x %.3f in, scaled=%v\n",
		path, len(doc.Shapes()), doc.Units(), doc.Bounds().Width(), doc.Bounds().Height(), doc.Scaled())
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
