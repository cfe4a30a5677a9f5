package main

import "github.com/clbarnes/solve-sudoku/cmd"

func main() {
	cmd.Execute()
}
