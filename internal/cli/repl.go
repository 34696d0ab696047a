package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App implements it;
// tests use a recording stub.
type execIface interface {
	Water(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Goal(ctx context.Context, args []string) error
	Drink(ctx context.Context, args []string) error
	Drinks(ctx context.Context, args []string) error
	Undrink(ctx context.Context, args []string) error
	Beverages(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Custom(ctx context.Context, args []string) error
	BeverageStats(ctx context.Context, args []string) error
	Focus(ctx context.Context, args []string) error
	Sleep(ctx context.Context, args []string) error
	Remind(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
}

const helpText = `Commands:
  water <ml>                      log plain water
  history [days]                  water intake per day (default 7)
  history month                   weekly averages over the last 30 days
  stats                           streaks, completion rate and averages
  goal [ml]                       show or set the daily goal
  drink <beverage> [ml]           log a beverage (default amount if omitted)
  drinks [YYYY-MM-DD]             beverage summary for a day (default today)
  undrink <entry-id>              delete a beverage entry
  beverages                       list beverage types
  fav [beverage]                  list favourites or toggle one
  custom <name> <coef> <ml>       add a custom beverage type
  bevstats [days]                 beverage statistics (default 7)
  focus start <min> <name...>     start a focus session
  focus done <id>                 complete a session
  focus rm <id>                   delete a session
  focus list                      list sessions
  focus today                     today's focus stats
  sleep add <HH:MM> <HH:MM> [q] [notes...]
                                  log last night's sleep, quality 1-5
  sleep rate <id> <q>             set the quality of a record
  sleep rm <id>                   delete a record
  sleep list                      list records
  sleep week                      sleep over the last seven days
  remind [start end]              check now, or set reminder hours
  export [file]                   write a backup
  import <file>                   restore a backup
  exit | quit                     leave`

// runREPL reads commands line by line from scanner and dispatches them to a.
// A non-empty promptFn result is printed before each read. Handler errors are
// reported to w and the loop continues; it ends on EOF, "exit" or "quit", or
// when ctx is done, even while a read is pending.
func runREPL(ctx context.Context, a execIface, promptFn func() string, scanner *bufio.Scanner, w io.Writer) {
	if ctx.Err() != nil {
		return
	}
	lines := scanLines(ctx, scanner)

	for {
		if ctx.Err() != nil {
			return
		}
		if p := promptFn(); p != "" {
			fmt.Fprint(w, p)
		}

		var line string
		select {
		case <-ctx.Done():
			return
		case l, ok := <-lines:
			if !ok {
				return
			}
			line = l
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help", "?":
			fmt.Fprintln(w, helpText)
		case "water", "w":
			err = a.Water(ctx, args)
		case "history":
			err = a.History(ctx, args)
		case "stats":
			err = a.Stats(ctx, args)
		case "goal":
			err = a.Goal(ctx, args)
		case "drink", "d":
			err = a.Drink(ctx, args)
		case "drinks":
			err = a.Drinks(ctx, args)
		case "undrink":
			err = a.Undrink(ctx, args)
		case "beverages":
			err = a.Beverages(ctx, args)
		case "fav":
			err = a.Favorite(ctx, args)
		case "custom":
			err = a.Custom(ctx, args)
		case "bevstats":
			err = a.BeverageStats(ctx, args)
		case "focus", "f":
			err = a.Focus(ctx, args)
		case "sleep":
			err = a.Sleep(ctx, args)
		case "remind":
			err = a.Remind(ctx, args)
		case "export":
			err = a.Export(ctx, args)
		case "import":
			err = a.Import(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, describeError(err))
		}
	}
}

// scanLines feeds scanner lines to the returned channel until EOF or ctx is
// done. The goroutine may stay blocked in Scan after ctx is done; it exits
// with the next line or when the input is closed.
func scanLines(ctx context.Context, scanner *bufio.Scanner) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
