// Command spmcalc is the interactive sparse matrix calculator: pick an
// operation, point it at two matrix files, and print or save the result.
// All engine logic lives in the library packages; this shell only
// prompts, delegates and reports. An error aborts the current action,
// never the process.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/sparsemat/calc"
)

// prompt prints label and returns the next trimmed input line.
func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !in.Scan() {
		return "", false // stdin closed; caller ends the session
	}
	return strings.TrimSpace(in.Text()), true
}

func main() {
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("Sparse Matrix Calculator")
	fmt.Println("1: Add")
	fmt.Println("2: Subtract")
	fmt.Println("3: Multiply")

	selector, ok := prompt(in, "Choose (1/2/3): ")
	if !ok {
		return
	}
	op, err := calc.ParseOp(selector)
	if err != nil {
		fmt.Println("Invalid selection.")
		return
	}

	pathA, ok := prompt(in, "First matrix file: ")
	if !ok {
		return
	}
	pathB, ok := prompt(in, "Second matrix file: ")
	if !ok {
		return
	}

	a, err := calc.Load(pathA)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading matrix: %v\n", err)
		return
	}
	b, err := calc.Load(pathB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading matrix: %v\n", err)
		return
	}

	result, err := calc.Operate(op, a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Operation error: %v\n", err)
		return
	}

	save, ok := prompt(in, "Save result to file? (y/n): ")
	if !ok {
		return
	}
	if strings.EqualFold(save, "y") {
		outPath, ok := prompt(in, "Output file path: ")
		if !ok {
			return
		}
		if err = calc.Save(outPath, result); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write file: %v\n", err)
			return
		}
		fmt.Println("Saved.")
		return
	}

	text, err := calc.Render(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render error: %v\n", err)
		return
	}
	fmt.Println("Result:")
	fmt.Print(text)
}
