// harness/runner.go
package harness

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Result is the recorded outcome of one check.
type Result struct {
	Name   string
	Failed bool
	Msg    string
}

// Config configures a Runner. Zero fields get defaults: Out falls back to
// os.Stdout and Registry to the ambient catalog.
type Config struct {
	// Out receives the per-check report lines and the summary.
	Out io.Writer

	// BeforeEach runs ahead of every check body. Wire the board reset here
	// so no state leaks between checks.
	BeforeEach func()

	// Registry is the catalog to execute.
	Registry *Registry
}

// Runner executes a catalog sequentially, one check at a time. A failed
// assertion or a stray panic ends only the check that raised it.
type Runner struct {
	out        io.Writer
	beforeEach func()
	reg        *Registry
	results    []Result
}

func NewRunner(cfg Config) *Runner {
	r := &Runner{
		out:        cfg.Out,
		beforeEach: cfg.BeforeEach,
		reg:        cfg.Registry,
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.reg == nil {
		r.reg = Default
	}
	return r
}

// RunAll executes every registered check in registration order and returns
// the number of failures, intended as the process exit code.
func (r *Runner) RunAll() int {
	runID := uuid.New().String()
	r.results = r.results[:0]

	failed := 0
	for _, e := range r.reg.snapshot() {
		if r.beforeEach != nil {
			r.beforeEach()
		}
		res := runOne(e)
		r.results = append(r.results, res)
		if res.Failed {
			failed++
			fmt.Fprintf(r.out, "[ FAIL ] %s: %s\n", res.Name, res.Msg)
		} else {
			fmt.Fprintf(r.out, "[ PASS ] %s\n", res.Name)
		}
	}
	fmt.Fprintf(r.out, "[ DONE ] run %s: %d passed, %d failed\n",
		runID, len(r.results)-failed, failed)
	return failed
}

// Results returns the outcomes of the most recent RunAll, in catalog order.
func (r *Runner) Results() []Result {
	return append([]Result(nil), r.results...)
}

// runOne invokes a body and converts its termination into a Result. An
// assertion failure carries its message; any other panic is reported
// generically rather than crashing the run.
func runOne(e entry) (res Result) {
	res.Name = e.name
	defer func() {
		if rec := recover(); rec != nil {
			res.Failed = true
			if f, ok := rec.(failure); ok {
				res.Msg = f.msg
			} else {
				res.Msg = fmt.Sprintf("unexpected panic: %v", rec)
			}
		}
	}()
	e.fn(&T{name: e.name})
	return res
}
