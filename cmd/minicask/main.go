package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"minicask/core"
	"minicask/internal/cli"
	"minicask/internal/index"
)

const usage = `Usage:
  minicask -file FILE get KEY
  minicask -file FILE insert KEY VALUE
  minicask -file FILE update KEY VALUE
  minicask -file FILE delete KEY
  minicask -file FILE has KEY
  minicask -file FILE keys
  minicask -file FILE count
  minicask -file FILE repl
`

func main() {
	file := flag.String("file", "minicask.db", "Path of the store file")
	ordered := flag.Bool("ordered", false, "Use the ordered (btree) index so 'keys' output is sorted")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []core.Option{}
	if *ordered {
		opts = append(opts, core.WithIndexType(index.BTree))
	}

	eng, err := core.Open(*file, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer eng.Close()

	if args[0] == "repl" {
		runREPL(eng)
		return
	}

	action := strings.ToLower(args[0])
	key, value := "", ""
	if len(args) > 1 {
		key = args[1]
	}
	if len(args) > 2 {
		value = args[2]
	}

	out, err := execute(eng, action, key, value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if out != "" {
		fmt.Println(out)
	}
}

func runREPL(eng *core.Engine) {
	fmt.Printf("Opened %s\n", eng.Path())
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		cmd, key, value, err := cli.SplitCommandLine(strings.TrimSpace(line))
		if err != nil {
			if errors.Is(err, cli.ErrEmptyLine) {
				continue
			}
			fmt.Println("parse error:", err)
			continue
		}

		if cmd == "exit" {
			return
		}

		out, err := execute(eng, cmd, key, value)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if out == "" {
			out = "ok"
		}
		fmt.Println(out)
	}
}

func execute(eng *core.Engine, action, key, value string) (string, error) {
	switch action {
	case "get":
		val, err := eng.Get([]byte(key))
		if err != nil {
			return "", err
		}
		return string(val), nil
	case "insert":
		return "", eng.Insert([]byte(key), []byte(value))
	case "update":
		return "", eng.Update([]byte(key), []byte(value))
	case "delete":
		return "", eng.Delete([]byte(key))
	case "has":
		return fmt.Sprintf("%t", eng.Has([]byte(key))), nil
	case "count":
		return fmt.Sprintf("%d", eng.Len()), nil
	case "keys":
		keys := eng.Keys()
		if len(keys) == 0 {
			return "(empty)", nil
		}
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = string(k)
		}
		return strings.Join(parts, "\n"), nil
	case "help":
		return strings.TrimSpace(usage), nil
	default:
		return "", fmt.Errorf("unknown action %q", action)
	}
}
