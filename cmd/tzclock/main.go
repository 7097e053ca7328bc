// Command tzclock shows an analog clock for a city picked from a fixed list.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
