/*
Package records provides domain records which may be stored in any keyed
container: students, employees and products.

Each record type implements keyed.Element. Its key is the record's ID
(enrollment number, staff number, product code), and Display writes a single
line in which names are padded by their display width on a terminal, so that
records line up in container dumps even for names with wide or combining
characters. Money is rendered in Brazilian notation, e.g. "R$ 1.234,56".

Records may be loaded from TOML documents of the form

	[[student]]
	id     = 17
	name   = "Ana Lima"
	course = "Computer Science"
	grade  = 9.5

	[[product]]
	id       = 1001
	name     = "Caderno"
	category = "Papelaria"
	brand    = "Tilibra"
	price    = 12.9
	stock    = 40

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package records
