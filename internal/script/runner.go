package script

import (
	"fmt"
	"io"

	"github.com/san-kum/dynarray/internal/dynarray"
)

// Report counts commands that the array accepted and rejected.
type Report struct {
	Applied int
	Failed  int
}

// Runner applies commands to one array. A rejected command is counted and
// the run continues.
type Runner struct {
	arr    *dynarray.DynamicArray[int]
	out    io.Writer
	report Report

	// Printer renders the array for print commands. Nil uses Print.
	Printer func(w io.Writer, arr *dynarray.DynamicArray[int])
}

func NewRunner(arr *dynarray.DynamicArray[int], out io.Writer) *Runner {
	return &Runner{arr: arr, out: out}
}

func (r *Runner) Array() *dynarray.DynamicArray[int] {
	return r.arr
}

// SetOutput redirects get/print/info output.
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

func (r *Runner) Report() Report {
	return r.report
}

func (r *Runner) Run(cmds []Command) Report {
	for _, cmd := range cmds {
		_ = r.Apply(cmd)
	}
	return r.report
}

// Apply executes one command and returns the array's error, if any.
func (r *Runner) Apply(cmd Command) error {
	err := r.apply(cmd)
	if err != nil {
		r.report.Failed++
		return err
	}
	r.report.Applied++
	return nil
}

func (r *Runner) apply(cmd Command) error {
	a := r.arr
	switch cmd.Verb {
	case VerbAdd:
		a.Add(cmd.Args[0])
	case VerbSet:
		return a.Set(cmd.Args[0], cmd.Args[1])
	case VerbGet:
		v, err := a.Get(cmd.Args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, v)
	case VerbInsert:
		return a.InsertAt(cmd.Args[0], cmd.Args[1])
	case VerbRemove:
		return a.RemoveAt(cmd.Args[0])
	case VerbResize:
		step := dynarray.DefaultGrowStep
		if len(cmd.Args) > 1 {
			step = cmd.Args[1]
		}
		return a.Resize(cmd.Args[0], step)
	case VerbShrink:
		a.ShrinkToFit()
	case VerbClear:
		a.Clear()
	case VerbAppend:
		other, err := dynarray.New[int](len(cmd.Args), dynarray.DefaultGrowStep)
		if err != nil {
			return err
		}
		for _, v := range cmd.Args {
			other.Add(v)
		}
		a.AppendAll(other)
	case VerbSelfAppend:
		a.AppendAll(a)
	case VerbPrint:
		if r.Printer != nil {
			r.Printer(r.out, a)
		} else {
			a.Print(r.out)
		}
	case VerbInfo:
		fmt.Fprintf(r.out, "len=%d cap=%d step=%d upper=%d\n", a.Len(), a.Capacity(), a.GrowStep(), a.UpperBound())
	default:
		return fmt.Errorf("%w: %s", ErrUnknownVerb, cmd.Verb)
	}
	return nil
}
