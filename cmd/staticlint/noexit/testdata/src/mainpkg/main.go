package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")
	if len(os.Args) > 5 {
		os.Exit(2) // want "вызов os.Exit в функции main запрещён"
	}
	defer func() {
		os.Exit(0)
	}()
	os.Exit(1) // want "вызов os.Exit в функции main запрещён"
}

func helper() {
	os.Exit(3)
}
