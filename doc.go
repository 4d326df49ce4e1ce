// Package base57 implements a binary-to-text encoding using 57 alphanumeric symbols. The glyphs which
// are easily mistaken for one another (0, O, 1, l and I) are not used, so the text is safe to copy by
// hand.
//
// Every 8 bytes become a group of 11 symbols. The group is the little-endian value of the bytes
// written in a mixed radix whose bases alternate between 57 and 56; at a base-56 position the symbol
// is never the same as the one before it. A trailing block of 1 to 7 bytes is written with 2, 3, 5,
// 6, 7, 9 or 10 symbols. A line break is inserted after every 8 groups.
//
// Decoding skips whitespace and the separators "-./:\_". It stops on control bytes and on any other
// byte outside the alphabet, and rejects digit combinations which do not fit into the bytes they
// stand for, so a corrupt text never decodes silently.
package base57
