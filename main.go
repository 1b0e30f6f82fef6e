// Command brot renders the Mandelbrot set into grayscale PNG images.
package main

import "github.com/mouse-blink/brot/cmd"

func main() {
	cmd.Execute()
}
