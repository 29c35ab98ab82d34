// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command selsort reads a line of integers, sorts it from largest to
// smallest with a selection sort, and prints the result.
//
// Usage:
//
//	selsort                      # prompt, read one line from stdin
//	echo "3 1 3 2" | selsort -no-prompt
//	selsort -batch < lists.txt   # sort every line, in parallel
//
// Example session:
//
//	Enter a list of numbers separated by spaces: 1 2 3 4
//	Sorted list in descending order: [4 3 2 1]
//
// Setting HWY_NO_SIMD=1 forces the scalar target; -v reports the target in use.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ajroetker/selsort/hwy"
	"github.com/ajroetker/selsort/hwy/contrib/sort"
	"github.com/ajroetker/selsort/hwy/contrib/workerpool"
	"github.com/ajroetker/selsort/internal/intarr"
)

const (
	prompt = "Enter a list of numbers separated by spaces: "
	label  = "Sorted list in descending order:"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("selsort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose  = fs.Bool("v", false, "Print the detected target to stderr")
		batch    = fs.Bool("batch", false, "Sort every input line until EOF instead of a single line")
		workers  = fs.Int("workers", 0, "Worker count for -batch (<= 0 uses GOMAXPROCS)")
		noPrompt = fs.Bool("no-prompt", false, "Do not print the input prompt")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n\n", fs.Args())
		fs.Usage()
		return 2
	}

	if *verbose {
		fmt.Fprintf(stderr, "target: %s, width: %d bytes\n", hwy.CurrentName(), hwy.CurrentWidth())
	}

	var err error
	if *batch {
		err = sortBatch(stdin, stdout, *workers)
	} else {
		err = sortOne(stdin, stdout, !*noPrompt)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func sortOne(stdin io.Reader, stdout io.Writer, withPrompt bool) error {
	if withPrompt {
		fmt.Fprint(stdout, prompt)
	}

	line, err := intarr.ReadLine(bufio.NewReader(stdin))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	numbers, err := intarr.ParseLine(1, line)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, label, sort.SelectionSortDescending(numbers))
	return err
}

func sortBatch(stdin io.Reader, stdout io.Writer, numWorkers int) error {
	lists, err := intarr.ReadAll(stdin)
	if err != nil {
		return err
	}

	pool := workerpool.New(numWorkers)
	defer pool.Close()

	pool.ParallelForAtomic(len(lists), func(i int) {
		sort.SelectionSortDescending(lists[i])
	})

	w := bufio.NewWriter(stdout)
	for _, numbers := range lists {
		fmt.Fprintln(w, label, numbers)
	}
	return w.Flush()
}
