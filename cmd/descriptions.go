package cmd

const rootLongDescription = `Brot renders the Mandelbrot set: for every pixel of the output image it
iterates z = z*z + c for the corresponding point c of the complex plane,
and shades the pixel by how quickly z escaped the circle of radius two.
Points that never escape within the iteration budget are painted black.

Without a subcommand, brot renders to the given output file (default
mandelbrot.png):

  brot deep.png -s 1920x1080 -u -0.75,0.2 -l -0.73,0.18 -n 1000`

const renderLongDescription = `Render computes the escape time of every pixel and writes a grayscale PNG.

The viewport is given by its upper-left and lower-right corners on the
complex plane, each as a RE,IM pair; the image size is a WIDTHxHEIGHT
pair. Rendering is split into horizontal bands processed in parallel.`

const probeLongDescription = `Probe evaluates a single point of the complex plane and reports whether it
escaped the circle of radius two, and at which iteration:

  brot probe -- -0.5,0.5
  brot probe 0.26,0 -n 10000

A point that stays inside for the whole budget is reported inconclusive:
it is probably a member of the Mandelbrot set.`

const serveLongDescription = `Serve starts a local HTTP server with a live view of the rendering. The
page connects back over a websocket and draws each band onto a canvas as
it is computed. Every page load triggers a fresh rendering.`
