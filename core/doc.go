/*
Package baldr generates mosaic pictures out of the color palette of a source image.

The palette of the source image is extracted once, then every picture draws
its own random selection of colors from it and paints them as a grid of
solid squares. Pictures are independent of each other, so a batch of them
is generated concurrently.

	src, err := baldr.GetImage("parrot.jpg")
	if err != nil {
		log.Fatal(err)
	}
	palette, err := baldr.ExtractPalette(src, baldr.MethodTable, 10)
	if err != nil {
		log.Fatal(err)
	}

	gen, err := baldr.NewGenerator(baldr.Config{
		SquaresX:    10,
		SquaresY:    10,
		SquareSize:  128,
		NumColors:   10,
		NumPictures: 5,
		Workers:     runtime.NumCPU(),
	}, palette)
	if err != nil {
		log.Fatal(err)
	}
	if err := gen.Run(context.Background(), "output", nil); err != nil {
		log.Fatal(err)
	}
*/
package baldr
