// This file is part of Linkmap.
//
// Linkmap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Linkmap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Linkmap.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/linkmap/colorterm"
	"github.com/jetsetilly/linkmap/curated"
	"github.com/jetsetilly/linkmap/logger"
	"github.com/jetsetilly/linkmap/mapfile"
	"github.com/jetsetilly/linkmap/maploader"
	"github.com/jetsetilly/linkmap/modalflag"
	"github.com/jetsetilly/linkmap/report"
	"github.com/jetsetilly/linkmap/statsview"
	"github.com/jetsetilly/linkmap/version"
)

// error patterns for the command.
const (
	argumentError = "%s mode: %s"
	tailError     = "unparsed content at line %d: %s"
)

const logTag = "linkmap"

const mapFileHelp = `The map file can be a path to a file, a URL starting with http:// or https://
or a directory. Directories are searched for a map file with a conventional
name. The default mode is SUMMARY.`

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch runs the command with the arguments and returns the exit value.
// output from the selected mode is written to stdout. errors and the echoed
// log are written to stderr.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("SUMMARY", "TREE", "YAML", "DOT", "CHECK", "VERSION")
	md.AdditionalHelp(mapFileHelp)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "SUMMARY":
		err = present(md, stdout, stderr, false, func(w io.Writer, doc *mapfile.Document, _ bool) error {
			return report.Summary(w, doc)
		})

	case "TREE":
		err = present(md, stdout, stderr, true, report.Tree)

	case "YAML":
		err = present(md, stdout, stderr, false, func(w io.Writer, doc *mapfile.Document, _ bool) error {
			return report.YAML(w, doc)
		})

	case "DOT":
		err = present(md, stdout, stderr, false, func(w io.Writer, doc *mapfile.Document, _ bool) error {
			report.Dot(w, doc)
			return nil
		})

	case "CHECK":
		err = check(md, stdout, stderr)

	case "VERSION":
		fmt.Fprintln(stdout, version.String())
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to all modes that load a map file.
type options struct {
	log       *bool
	statsview *bool
	color     *string
	sha1      *string
}

func addOptions(md *modalflag.Modes) options {
	opts := options{
		log:   md.AddBool("log", false, "echo log to stderr"),
		color: md.AddString("color", "AUTO", "use colour in output: AUTO, ON, OFF"),
		sha1:  md.AddString("sha1", "", "expected sha1 hash of the map file"),
	}
	if statsview.Available() {
		opts.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return opts
}

// colour returns whether the writer should receive coloured output.
func colour(mode string, w io.Writer) (bool, error) {
	f, _ := w.(*os.File)
	return colorterm.Enabled(mode, f)
}

// apply the common options. must be called after md.Parse().
func (opts options) apply(stdout io.Writer, stderr io.Writer) error {
	if *opts.log {
		c, err := colour(*opts.color, stderr)
		if err != nil {
			return err
		}
		if c {
			logger.SetEcho(logger.NewColorizer(stderr))
		} else {
			logger.SetEcho(stderr)
		}
	} else {
		logger.SetEcho(nil)
	}

	if opts.statsview != nil && *opts.statsview {
		statsview.Launch(stdout)
	}

	return nil
}

// load finds, loads and parses the map file named by the single remaining
// argument.
func load(md *modalflag.Modes, opts options) (*mapfile.Document, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf(argumentError, strings.ToLower(md.Mode()), "map file required")
	case 1:
	default:
		return nil, curated.Errorf(argumentError, strings.ToLower(md.Mode()), "too many arguments")
	}

	pth, err := maploader.Find(md.GetArg(0))
	if err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, logTag, "loading %s", pth)

	ml := maploader.NewLoader(pth)
	ml.Hash = *opts.sha1
	if err := ml.Load(); err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, logTag, "%d bytes (sha1 %s)", len(ml.Data), ml.Hash)

	doc, err := mapfile.Parse(ml.String())
	if err != nil {
		return nil, err
	}

	info := doc.Info()
	logger.Logf(logger.Allow, "mapfile", "%d references, %d discarded, %d memories, %d files",
		info.References, info.Discarded, info.Memories, info.Files)
	logger.Logf(logger.Allow, "mapfile", "%d sections, %d symbols", info.Sections, info.Symbols)

	// memory regions are only logged when the log is being echoed
	detail := logger.Verbose(*opts.log)
	for _, m := range doc.Memory {
		logger.Logf(detail, "mapfile", "memory %s at %#x (%#x bytes)", m.Name, m.Origin, m.Length)
	}

	if doc.HasTail() {
		line, snippet := tailPosition(doc)
		logger.Logf(logger.Allow, "mapfile", "unparsed tail of %d bytes at line %d: %s", len(doc.Tail), line, snippet)
	}

	return doc, nil
}

// tailPosition returns the line number of the first non-blank line of the
// tail and the content of that line.
func tailPosition(doc *mapfile.Document) (int, string) {
	prefix := doc.Prefix()
	tail := doc.Tail

	line := strings.Count(prefix, "\n") + 1
	for {
		l, rest, found := strings.Cut(tail, "\n")
		if strings.TrimSpace(l) != "" || !found {
			return line, strings.TrimRight(l, "\r")
		}
		tail = rest
		line++
	}
}

type presenter func(w io.Writer, doc *mapfile.Document, colour bool) error

// present a map file using one of the report functions.
func present(md *modalflag.Modes, stdout io.Writer, stderr io.Writer, colourful bool, f presenter) error {
	md.NewMode()

	opts := addOptions(md)
	tail := md.AddBool("tail", false, "print unparsed tail after the output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if !colourful && !*opts.log {
		md.Visit(func(flg string) {
			if flg == "color" {
				fmt.Fprintf(stderr, "! ignored --%s flag in %s mode\n", flg, md)
			}
		})
	}

	if err := opts.apply(stdout, stderr); err != nil {
		return err
	}

	doc, err := load(md, opts)
	if err != nil {
		return err
	}

	var c bool
	if colourful {
		c, err = colour(*opts.color, stdout)
		if err != nil {
			return err
		}
	}

	if err := f(stdout, doc, c); err != nil {
		return err
	}

	if *tail && doc.HasTail() {
		_, err = io.WriteString(stdout, doc.Tail)
		return err
	}

	return nil
}

// check parses the map file and fails if there is content that can't be
// parsed.
func check(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	opts := addOptions(md)
	md.AdditionalHelp("CHECK mode fails if the map file has content that can not be parsed.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := opts.apply(stdout, stderr); err != nil {
		return err
	}

	doc, err := load(md, opts)
	if err != nil {
		return err
	}

	if doc.HasTail() {
		line, snippet := tailPosition(doc)
		return curated.Errorf(tailError, line, snippet)
	}

	fmt.Fprintln(stdout, "ok")
	return nil
}
