// Package couleur decorates strings with a foreground color and text styles
// for display on a terminal.
//
// A Text is built from a raw string and then edited in any order:
//
//	t := couleur.WithColor("Hello, World!", couleur.ColorRed).
//		AddStyle(couleur.StyleBold).
//		AddStyle(couleur.StyleUnderline)
//	fmt.Println(t) // "\x1b[1;4;31mHello, World!\x1b[m"
//
// Styles are always emitted in the same order regardless of the order they
// were added, and adding a style twice has no effect. Color and style
// keywords parse without errors: anything unrecognized becomes the Clear
// variant.
package couleur
