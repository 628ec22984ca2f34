package main

import (
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitLastArg(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runeclass.setexpr")
	defer teardown()
	//
	for i, test := range []struct {
		input, expr, cp string
	}{
		{"space ' '", "space", "' '"},
		{"letter 'a'", "letter", "'a'"},
		{"digit\t0x30", "digit", "0x30"},
		{"'a'..'z' | ' ' '\\''", "'a'..'z' | ' '", "'\\''"},
		{"' ' | '\\'' ' '", "' ' | '\\''", "' '"},
		{"  space   'x'  ", "space", "'x'"},
	} {
		expr, cp, ok := splitLastArg(test.input)
		if !ok {
			t.Errorf("test %d: %q not split", i, test.input)
			continue
		}
		if expr != test.expr || cp != test.cp {
			t.Errorf("test %d: expected %q + %q, have %q + %q", i, test.expr, test.cp, expr, cp)
		}
	}
	for _, input := range []string{"space", "' '", "'a b'"} {
		if _, _, ok := splitLastArg(input); ok {
			t.Errorf("%q should not split", input)
		}
	}
}

func TestStrictBoundariesFromConfig(t *testing.T) {
	initConfig(testconfig.Conf{
		"tracing.adapter":   "nop",
		"strict-boundaries": "true",
	})
	if !gconf.IsSet("strict-boundaries") {
		t.Fatalf("configuration not installed")
	}
	if !strictBoundaries(false) {
		t.Errorf("expected configuration to switch on strict boundaries")
	}
	initConfig(testconfig.Conf{"tracing.adapter": "nop"})
	if strictBoundaries(false) {
		t.Errorf("expected strict boundaries to be off by default")
	}
	if !strictBoundaries(true) {
		t.Errorf("expected flag to switch on strict boundaries")
	}
}
