// Package command executes one resolved rclip command against a store.
package command

import (
	"fmt"

	"github.com/matsen/rclip/internal/store"
)

// Kind identifies a command.
type Kind int

const (
	Get Kind = iota
	Set
	Del
	List
	Copy
)

func (k Kind) String() string {
	switch k {
	case Get:
		return "get"
	case Set:
		return "set"
	case Del:
		return "del"
	case List:
		return "list"
	case Copy:
		return "copy"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Output strings for not-found and delete results.
const (
	NilReply     = "(nil)"
	DeletedReply = "(integer) 1"
	MissingReply = "(integer) 0"
)

// Command is a parsed CLI invocation.
// Target addresses a record for Get, Del and Copy; Key and Value are used by Set.
type Command struct {
	Kind   Kind
	Target string
	ByKey  bool
	Key    string
	Value  string
}

// TextSetter sets clipboard text.
type TextSetter interface {
	SetText(text string) error
}

// ClipboardFunc acquires the clipboard. It is called only when Copy finds a record.
type ClipboardFunc func() (TextSetter, error)

// Result is the outcome of one command.
// The caller must persist the store when Mutated is set, before printing Lines.
type Result struct {
	Lines   []string
	Mutated bool
}

// Executor runs commands against a store.
type Executor struct {
	Store     *store.Store
	Clipboard ClipboardFunc

	// OnClipboardError sees set-text failures, which never fail the command.
	OnClipboardError func(error)
}

// Execute runs c. Not-found is a normal result; the only error is a failure
// to acquire the clipboard.
func (e *Executor) Execute(c Command) (Result, error) {
	switch c.Kind {
	case Get:
		r, ok := e.resolve(c)
		if !ok {
			return reply(NilReply), nil
		}
		return reply(r.Value), nil

	case Set:
		r := e.Store.Insert(c.Key, c.Value)
		return Result{
			Lines:   []string{fmt.Sprintf("OK (id = %d)", r.ID)},
			Mutated: true,
		}, nil

	case Del:
		var ok bool
		if c.ByKey {
			_, ok = e.Store.RemoveByKey(c.Target)
		} else if id, valid := store.ParseID(c.Target); valid {
			_, ok = e.Store.RemoveByID(id)
		}
		if !ok {
			return reply(MissingReply), nil
		}
		return Result{Lines: []string{DeletedReply}, Mutated: true}, nil

	case List:
		records := e.Store.List()
		lines := make([]string, len(records))
		for i, r := range records {
			lines[i] = r.String()
		}
		return Result{Lines: lines}, nil

	case Copy:
		r, ok := e.resolve(c)
		if !ok {
			return reply(NilReply), nil
		}
		if err := e.copy(r.Value); err != nil {
			return Result{}, err
		}
		return reply(fmt.Sprintf("copied '%s' to clipboard", r.Value)), nil

	default:
		return Result{}, fmt.Errorf("unknown command %v", c.Kind)
	}
}

// resolve finds the record a Get or Copy addresses.
// A target that is not a valid id is simply not found.
func (e *Executor) resolve(c Command) (store.Record, bool) {
	if c.ByKey {
		return e.Store.GetByKey(c.Target)
	}
	id, ok := store.ParseID(c.Target)
	if !ok {
		return store.Record{}, false
	}
	return e.Store.GetByID(id)
}

// copy acquires the clipboard and sets text. Acquisition failure is
// returned; a set failure is only reported to OnClipboardError.
func (e *Executor) copy(text string) error {
	if e.Clipboard == nil {
		return fmt.Errorf("acquiring clipboard: no clipboard configured")
	}
	cb, err := e.Clipboard()
	if err != nil {
		return fmt.Errorf("acquiring clipboard: %w", err)
	}
	if err := cb.SetText(text); err != nil && e.OnClipboardError != nil {
		e.OnClipboardError(err)
	}
	return nil
}

func reply(line string) Result {
	return Result{Lines: []string{line}}
}
