package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) Water(_ context.Context, a []string) error     { return f.record("water", a) }
func (f *fakeExec) History(_ context.Context, a []string) error   { return f.record("history", a) }
func (f *fakeExec) Stats(_ context.Context, a []string) error     { return f.record("stats", a) }
func (f *fakeExec) Goal(_ context.Context, a []string) error      { return f.record("goal", a) }
func (f *fakeExec) Drink(_ context.Context, a []string) error     { return f.record("drink", a) }
func (f *fakeExec) Drinks(_ context.Context, a []string) error    { return f.record("drinks", a) }
func (f *fakeExec) Undrink(_ context.Context, a []string) error   { return f.record("undrink", a) }
func (f *fakeExec) Beverages(_ context.Context, a []string) error { return f.record("beverages", a) }
func (f *fakeExec) Favorite(_ context.Context, a []string) error  { return f.record("fav", a) }
func (f *fakeExec) Custom(_ context.Context, a []string) error    { return f.record("custom", a) }
func (f *fakeExec) BeverageStats(_ context.Context, a []string) error {
	return f.record("bevstats", a)
}
func (f *fakeExec) Focus(_ context.Context, a []string) error  { return f.record("focus", a) }
func (f *fakeExec) Sleep(_ context.Context, a []string) error  { return f.record("sleep", a) }
func (f *fakeExec) Remind(_ context.Context, a []string) error { return f.record("remind", a) }
func (f *fakeExec) Export(_ context.Context, a []string) error { return f.record("export", a) }
func (f *fakeExec) Import(_ context.Context, a []string) error { return f.record("import", a) }

func run(t *testing.T, exec execIface, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, sc, &out)
	return out.String()
}

func TestRunREPL_Dispatch(t *testing.T) {
	exec := &fakeExec{}
	out := run(t, exec,
		"water 250",
		"",
		"w 100",
		"drink coffee 150",
		"focus start 25 deep work",
		"sleep add 23:00 07:00 4",
		"bevstats 30",
		"fav",
		"export",
		"foobar",
		"exit",
		"water 999",
	)

	assert.Equal(t, []string{
		"water 250",
		"water 100",
		"drink coffee 150",
		"focus start 25 deep work",
		"sleep add 23:00 07:00 4",
		"bevstats 30",
		"fav",
		"export",
	}, exec.calls)
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_HelpAndEOF(t *testing.T) {
	exec := &fakeExec{}
	out := run(t, exec, "help")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "focus start <min> <name...>")
	assert.NotContains(t, out, "Bye!")
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{usageError("water <ml>"), "usage: water <ml>"},
		{common.Validationf("amount must be positive"), "Invalid input"},
		{common.ErrNotFound, "Not found."},
		{common.StorageError("get x", errors.New("disk")), "Storage error"},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		out := run(t, &fakeExec{err: tt.err}, "stats")
		assert.Contains(t, out, tt.want)
	}
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "wk> " }, bufio.NewScanner(strings.NewReader("water 1\n")), &out)

	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}

func TestRunREPL_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	prompted := make(chan struct{}, 1)
	promptFn := func() string {
		select {
		case prompted <- struct{}{}:
		default:
		}
		return ""
	}

	exec := &fakeExec{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, exec, promptFn, bufio.NewScanner(pr), io.Discard)
	}()

	<-prompted
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runREPL did not return after cancel")
	}
	assert.Empty(t, exec.calls)
}
