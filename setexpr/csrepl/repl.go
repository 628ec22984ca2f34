package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/runeclass/charset"
	"github.com/npillmayer/runeclass/partition"
	"github.com/npillmayer/runeclass/runtime"
	"github.com/npillmayer/runeclass/setexpr"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI ("CS.REPL"), where users may enter
// character set expressions. CS.REPL will evaluate the expression and print
// out the resulting set.
//
// Please refer to package "setexpr".
//
func main() {
	// set up configuration and logging
	initDisplay()
	initConfig(koanfadapter.New(nil, "csrepl", []string{".nt"}))
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	strict := flag.Bool("strict", false, "Report invalid boundaries as errors")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to CS.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up evaluator
	isStrict := strictBoundaries(*strict)
	tracer().Infof("Strict boundaries: %v", isStrict)
	ev := setexpr.NewEvaluator(setexpr.Strict(isStrict))
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	//
	// set up REPL
	repl, err := readline.New("csrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl: repl,
		ev:   ev,
	}
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err = intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands / expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// initConfig installs the global configuration and creates the tracers from
// the adapter it names (key "tracing.adapter", "go" by default).
func initConfig(conf schuko.Configuration) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(tracing.GetAdapterFromConfiguration(conf, "")))
}

// strictBoundaries is true if either the command line flag or the
// configuration key "strict-boundaries" asks for it.
func strictBoundaries(flagValue bool) bool {
	return flagValue || gconf.GetBool("strict-boundaries")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	ev   *setexpr.Evaluator
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a command or a statement, given on a line by itself.
// Errors are printed before they are returned.
func (intp *Intp) Eval(line string) (quit bool, err error) {
	if strings.HasPrefix(line, ":") {
		if quit, err = intp.Execute(line); err != nil {
			pterm.Error.Println(err.Error())
		}
		return quit, err
	}
	var cs charset.CharSet
	if cs, err = intp.ev.Eval(line); err != nil {
		printError(line, err)
		return false, err
	}
	pterm.Info.Println(cs.String())
	return false, nil
}

// Execute executes a REPL command.
func (intp *Intp) Execute(line string) (bool, error) {
	cmd := line
	arg := ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	tracer().Debugf("command %s, argument %q", cmd, arg)
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":count":
		cs, err := intp.ev.Eval(arg)
		if err != nil {
			return false, err
		}
		pterm.Info.Printf("%d code points in %d runs\n", cs.Count(), len(cs.Ranges()))
	case ":divide":
		cs, err := intp.ev.Eval(arg)
		if err != nil {
			return false, err
		}
		pterm.Println(arg)
		pterm.DefaultTree.WithRoot(divisionTree(cs)).Render()
	case ":has":
		return false, intp.has(arg)
	case ":vars":
		intp.vars()
	case ":push":
		st := intp.ev.Runtime().ScopeTree
		sc := st.PushNewScope(fmt.Sprintf("scope#%d", st.Depth()))
		pterm.Info.Printf("now in %v\n", sc)
	case ":pop":
		st := intp.ev.Runtime().ScopeTree
		if st.Depth() <= 2 {
			return false, errors.New("cannot pop global scope")
		}
		pterm.Info.Printf("leaving %v\n", st.PopScope())
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, nil
}

// has checks membership of a code point, given as the last argument.
func (intp *Intp) has(arg string) error {
	expr, cparg, ok := splitLastArg(arg)
	if !ok {
		return errors.New("usage: :has expr codepoint")
	}
	cs, err := intp.ev.Eval(expr)
	if err != nil {
		return err
	}
	cpset, err := intp.ev.Eval(cparg)
	if err != nil {
		return err
	}
	if cpset.Count() != 1 {
		return fmt.Errorf("%s is not a single code point", cparg)
	}
	cp := cpset.Boundaries()[0]
	pterm.Info.Printf("%#U in %s: %v\n", cp, expr, cs.Includes(cp))
	return nil
}

// splitLastArg splits off the last blank-separated argument. Blanks within
// quoted characters do not separate.
func splitLastArg(arg string) (string, string, bool) {
	arg = strings.TrimSpace(arg)
	cut := -1
	quoted, escaped := false, false
	for i, r := range arg {
		switch {
		case escaped:
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '\'':
			quoted = !quoted
		case !quoted && (r == ' ' || r == '\t'):
			cut = i
		}
	}
	if cut < 0 {
		return "", "", false
	}
	return strings.TrimSpace(arg[:cut]), arg[cut+1:], true
}

// vars lists all names visible from the current scope, innermost first.
func (intp *Intp) vars() {
	ll := pterm.LeveledList{}
	for sc := intp.ev.Runtime().ScopeTree.Current(); sc != nil; sc = sc.Parent {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: sc.Name})
		sc.Tags().Each(func(name string, tag *runtime.Tag) {
			text := fmt.Sprintf("%s = %v", name, tag.Set)
			if def, ok := tag.UData.(string); ok {
				text = fmt.Sprintf("%s = %s  %v", name, def, tag.Set)
			}
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: text})
		})
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

// divisionTree creates a tree with the continuous runs of a set as leaves.
func divisionTree(cs charset.CharSet) pterm.TreeNode {
	ll := pterm.LeveledList{}
	for _, piece := range partition.Divide(cs) {
		iv := piece.Ranges()[0]
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  fmt.Sprintf("%v  %#U … %#U", iv, iv.Lo, iv.Hi-1),
		})
	}
	if len(ll) == 0 {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "{}"})
	}
	return pterm.NewTreeFromLeveledList(ll)
}

func printError(line string, err error) {
	var e *setexpr.Error
	if errors.As(err, &e) && e.Span.To() <= uint64(len(line)) {
		pterm.Error.Println(err.Error())
		marker := strings.Repeat(" ", int(e.Span.From())) + strings.Repeat("^", int(max(1, e.Span.Len())))
		pterm.Println("         " + line)
		pterm.Println("         " + marker)
		return
	}
	pterm.Error.Println(err.Error())
}

func max(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
