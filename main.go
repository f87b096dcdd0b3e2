package main

import (
	"fmt"

	"github.com/asibahi/terminal-chess-app/ui"
)

func main() {
	if err := ui.RunApp(); err != nil {
		fmt.Println(err)
	}
}
