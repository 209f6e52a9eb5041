package main

import (
	"fmt"
	"os"

	"github.com/hknutzen/textfsm/pkg/program"
)

func main() {
	os.Exit(Main())
}

// Main prints value of KEY from config.
// Default value is printed, if KEY isn't set.
func Main() int {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s KEY\n", os.Args[0])
		return 1
	}
	cfg, err := program.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(cfg.GetVal(os.Args[1]))
	return 0
}
