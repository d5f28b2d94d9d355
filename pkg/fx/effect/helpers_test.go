package effect

import (
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

var errZero = errors.New("zero input")

type trace struct {
	log []string
}

func (tr *trace) mark(name string) Effect1[int] {
	return func(int) {
		tr.log = append(tr.log, name)
	}
}

func (tr *trace) fallible(name string) FallibleEffect1[int] {
	return tr.mark(name).Fallible()
}

// failOnZero fails whenever its input is 0 and leaves no trace.
func failOnZero() FallibleEffect1[int] {
	return func(v int) error {
		if v == 0 {
			return errZero
		}
		return nil
	}
}

func (tr *trace) bytes() []byte {
	return []byte(strings.Join(tr.log, "\n") + "\n")
}

func assertGolden(t *testing.T, name string, tr *trace) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, tr.bytes())
}
