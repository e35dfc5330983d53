// SPDX-License-Identifier: MIT
// Command fatiguemat evaluates a linear-algebra expression tree read from
// a JSON file, using a fatigue-priority worker pool, and writes the
// result (or an error) to another JSON file.
//
// Usage: fatiguemat <threads> <input-path> <output-path>
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/fatiguemat/eval"
	"github.com/katalvlaran/fatiguemat/ioformat"
)

// defaultOutputPath receives the error report when the command line
// itself is malformed and no output-path argument is available.
const defaultOutputPath = "output.json"

func main() {
	args := os.Args[1:]

	if len(args) != 3 {
		err := fmt.Errorf("%w: expected exactly 3 arguments (threads input output), got %d", ioformat.ErrInvalidArgument, len(args))
		writeErrorToPath(defaultOutputPath, err)
		return
	}

	threadsArg, inputPath, outputPath := args[0], args[1], args[2]

	threads, convErr := strconv.Atoi(threadsArg)
	if convErr != nil || threads <= 0 {
		err := fmt.Errorf("%w: threads must be a positive integer, got %q", ioformat.ErrInvalidArgument, threadsArg)
		writeErrorToPath(outputPath, err)
		return
	}

	if err := run(threads, inputPath, outputPath); err != nil {
		writeErrorToPath(outputPath, err)
	}
}

func run(threads int, inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	defer in.Close()

	root, err := ioformat.ParseExpression(in)
	if err != nil {
		return err
	}

	evaluator, err := eval.NewEvaluator(threads)
	if err != nil {
		return err
	}

	result, err := evaluator.Run(root)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	defer out.Close()

	return ioformat.WriteResult(out, result.ReadRowMajor())
}

// writeErrorToPath renders cause as {"error": ...} to path. If path itself
// cannot be created, the process still exits cleanly — there is no
// further fallback surface to report to.
func writeErrorToPath(path string, cause error) {
	out, err := os.Create(path)
	if err != nil {
		return
	}
	defer out.Close()

	_ = ioformat.WriteError(out, cause)
}
