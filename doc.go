/*
Package runeclass is a toolbox of building blocks for lexers and regular
expression engines working on Unicode input.

At its core lies package charset, implementing sets of code points as sorted
lists of interval boundaries, together with union, intersection, subtraction
and complement. Everything else builds on it:

■ charset: character sets and their algebra.

■ partition: Splitting character sets into continuous runs and computing
alphabet equivalence classes for a set of character classes.

■ automata: NFA and DFA node graphs with edges labelled by character sets,
including DFA transition tables indexed by alphabet class.

■ scanner, runtime, setexpr: A small language for character set expressions,
with an interactive calculator in setexpr/csrepl.

The base package contains data types which are used throughout the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runeclass
