// Command qtable reads a count followed by that many "key value" pairs,
// inserts them into a quadratic-probing hash table and prints the final slot
// layout.
//
// Configuration is read from the environment (optionally from a .env file)
// and can be overridden with flags:
//
//	QTABLE_CAPACITY  initial capacity (-capacity), default 11
//	QTABLE_VERBOSE   log resizes to stderr (-v), default false
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/theflywheel/qtable"
)

type config struct {
	capacity int
	verbose  bool
	prompt   bool
	digest   bool
}

func main() {
	logger := log.New(os.Stderr, "qtable: ", 0)

	if err := godotenv.Load(); err == nil {
		logger.Println("Loaded environment variables from .env")
	}

	var cfg config
	flag.IntVar(&cfg.capacity, "capacity", atoiDefault(getEnv("QTABLE_CAPACITY", "11"), 11), "initial table capacity")
	flag.BoolVar(&cfg.verbose, "v", boolDefault(getEnv("QTABLE_VERBOSE", ""), false), "log resizes to stderr")
	flag.BoolVar(&cfg.prompt, "prompt", false, "print interactive prompts")
	flag.BoolVar(&cfg.digest, "digest", false, "print the layout digest after the table")
	flag.Parse()

	var l *log.Logger
	if cfg.verbose {
		l = logger
	}
	if err := run(cfg, os.Stdin, os.Stdout, l); err != nil {
		logger.Fatalf("%v", err)
	}
}

// run drives one session: read n pairs from in, insert them, print the table.
func run(cfg config, in io.Reader, out io.Writer, logger *log.Logger) error {
	ht, err := qtable.New(cfg.capacity)
	if err != nil {
		return fmt.Errorf("creating table: %w", err)
	}
	ht.SetLogger(logger)

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	if cfg.prompt {
		fmt.Fprint(out, "Enter the number of values: ")
	}
	n, err := readInt(sc)
	if err != nil {
		return fmt.Errorf("reading count: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("reading count: negative count %d", n)
	}

	for i := 0; i < n; i++ {
		if cfg.prompt {
			fmt.Fprint(out, "Enter the key and value: ")
		}
		key, err := readInt(sc)
		if err != nil {
			return fmt.Errorf("reading pair %d: %w", i+1, err)
		}
		value, err := readInt(sc)
		if err != nil {
			return fmt.Errorf("reading pair %d: %w", i+1, err)
		}

		// Rejected keys are reported and skipped.
		if err := ht.Insert(key, value); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	if cfg.prompt {
		fmt.Fprintln(out, "The final hash table is: ")
	}
	if err := ht.Print(out); err != nil {
		return fmt.Errorf("printing table: %w", err)
	}
	if cfg.digest {
		fmt.Fprintf(out, "digest: %016x\n", ht.Digest())
	}
	return nil
}

func readInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.Atoi(sc.Text())
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func atoiDefault(s string, defaultValue int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return defaultValue
}

func boolDefault(s string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	return defaultValue
}
