package main

import "github.com/isacmj7/stroke-prediction-analysis/cmd"

func main() {
	cmd.Execute()
}
