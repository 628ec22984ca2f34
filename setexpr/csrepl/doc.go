/*
Package csrepl/main provides an interactive command line tool (CS.REPL)
for character set expressions. CS.REPL evaluates expressions and prints the
resulting set, which makes it a sandbox for experimenting with character
classes of lexer definitions.

Besides expressions and assignments, CS.REPL understands a few commands:

    :count e     number of code points in e
    :divide e    continuous runs of e, printed as a tree
    :has e cp    is code point cp a member of e?
    :vars        names defined in the current scope and its parents
    :push        open a new scope
    :pop         close the current scope
    :quit        leave CS.REPL

Configuration is read from a NestedText file, ~/.config/csrepl/config.nt or
~/.csrepl.nt. Setting "strict-boundaries" to true has the same effect as
flag -strict.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'runeclass.setexpr'
func tracer() tracing.Trace {
	return tracing.Select("runeclass.setexpr")
}
