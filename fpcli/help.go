package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "lift", "option", "literal", "literals":
		pterm.Info.Println("lift:<literal>")
		pterm.Println(`
	Lifts a literal into an Option.
	+----------------------+-----------+
	| Literal              | Variant   |
	+----------------------+-----------+
	| null, nil, undefined | Nothing   |
	| NaN                  | Nothing   |
	| 0, -1, false, ""     | Some      |
	| anything else        | Some      |
	+----------------------+-----------+
	Literals must not contain blanks.
	`)
	case "map", "filter", "functions", "predicates":
		pterm.Info.Println("map:<function> / filter:<predicate>")
		pterm.Println(`
	Functions:  inc, double, neg, upper, len
	Predicates: pos, neg, even, lt100, gt100, nonempty
	Neither is ever called on Nothing.
	`)
	case "check", "status", "must", "result":
		pterm.Info.Println("check / status / must[:message]")
		pterm.Println(`
	check turns the current Option into a Result:
	  Nothing                    -> Error(MissingValue)
	  not a non-negative number  -> Error(ValidationError)
	  otherwise                  -> Ok(number)
	status matches on the Result: Ok=200, ValidationError=400, MissingValue=404.
	must extracts the value or fails with the message (use _ for blanks).
	`)
	default:
		pterm.Info.Println("General Help")
		pterm.Println(`
	Enter a pipeline of steps, e.g.
	  lift:42 map:inc filter:lt100 or:0
	  lift:-3 check status
	Steps: lift, map, filter, or, check, status, must, help[:topic], quit
	`)
	}
}
