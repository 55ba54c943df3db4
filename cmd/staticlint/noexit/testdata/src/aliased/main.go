package main

import xos "os"

func main() {
	xos.Exit(1) // want "вызов os.Exit в функции main запрещён"
}
