package validate

import (
	"context"
	"errors"

	"github.com/kolah/oasgate/internal/checker"
	"github.com/kolah/oasgate/internal/document"
)

type fakeChecker struct {
	result  checker.Result
	lenient error

	checks, lenientCalls int
}

func (f *fakeChecker) Check(context.Context, *document.Document) checker.Result {
	f.checks++
	return f.result
}

func (f *fakeChecker) ParseLenient(context.Context, *document.Document) error {
	f.lenientCalls++
	return f.lenient
}

func produced(msgs ...string) *fakeChecker {
	return &fakeChecker{result: checker.Result{Messages: msgs, Model: struct{}{}}}
}

func failed(msgs ...string) *fakeChecker {
	return &fakeChecker{result: checker.Result{Messages: msgs}}
}

var errRemote = errors.New("Unable to load RELATIVE ref: http://ex.com/pet.json")

func tenErrors() []string {
	var msgs []string
	for i := range 10 {
		msgs = append(msgs, "attribute paths.'/p"+string(rune('a'+i))+"'.get is unexpected")
	}
	return msgs
}
