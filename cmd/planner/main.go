package main

import "github.com/osse101/GardenPlanner_Go/internal/cli"

func main() {
	cli.Execute()
}
