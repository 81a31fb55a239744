package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jorgench/fun-helpers/option"
	"github.com/jorgench/fun-helpers/result"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fp.cli'
func tracer() tracing.Trace {
	return tracing.Select("fp.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.fp.cli":    "Info",
		"trace.fp.result": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the Option/Result CLI")
	//
	// set up REPL
	repl, err := readline.New("fp > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

type stage int

const (
	stageEmpty  stage = iota // nothing lifted yet
	stageOption              // current value is intp.opt
	stageResult              // current value is intp.res
)

// Validated is the Result type produced by the 'check' step.
type Validated = result.Result[float64, result.Failure]

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	stage stage
	opt   option.Option[any]
	res   Validated
	last  string // text of the most recent output, for tests
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	switch intp.stage {
	case stageOption:
		return fmt.Sprintf("( option=%s )", intp.opt)
	case stageResult:
		return fmt.Sprintf("( result=%s )", intp.res)
	}
	return "()"
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.eval(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// eval parses and executes one input line.
func (intp *Intp) eval(line string) (error, bool) {
	cmd, err := parseCommand(line)
	if err != nil {
		return err, false
	}
	return intp.execute(cmd)
}

// show prints an output line and remembers it.
func (intp *Intp) show(format string, args ...interface{}) {
	intp.last = fmt.Sprintf(format, args...)
	pterm.Println(intp.last)
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	ops []Op
}

const (
	// op-code QUIT will not have an argument
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	LIFT
	MAP
	FILTER
	OR
	CHECK
	STATUS
	MUST
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"lift":   LIFT,
	"map":    MAP,
	"filter": FILTER,
	"or":     OR,
	"check":  CHECK,
	"status": STATUS,
	"must":   MUST,
}

var opNames = []string{
	"quit",
	"help",
	"lift",
	"map",
	"filter",
	"or",
	"check",
	"status",
	"must",
}

var errEmptyCommand = errors.New("empty command")

// parseCommand splits a line into steps, e.g. "lift:42 map:inc filter:lt100 or:0".
// Unknown operations are turned into HELP.
func parseCommand(line string) (*Command, error) {
	steps := strings.Fields(line)
	if len(steps) == 0 {
		return nil, errEmptyCommand
	}
	cmd := &Command{ops: make([]Op, 0, len(steps))}
	for _, step := range steps {
		c := strings.SplitN(step, ":", 2) // e.g.  "lift:NaN" or "must:giving_up" or "check"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			tracer().Infof("unknown operation '%s'", c[0])
			code = HELP
		}
		op := Op{code: code, arg: getOptArg(c, 1)}
		cmd.ops = append(cmd.ops, op)
		if code == QUIT {
			return cmd, nil
		}
		if op.arg == "" {
			tracer().Debugf("parsed %s", opNames[code])
		} else {
			tracer().Debugf("parsed %s: '%s'", opNames[code], op.arg)
		}
	}
	return cmd, nil
}

func getOptArg(c []string, i int) string {
	if len(c) > i {
		return c[i]
	}
	return ""
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	LIFT:   liftOp,
	MAP:    mapOp,
	FILTER: filterOp,
	OR:     orOp,
	CHECK:  checkOp,
	STATUS: statusOp,
	MUST:   mustOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.ops)
	for _, c := range cmd.ops {
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}
