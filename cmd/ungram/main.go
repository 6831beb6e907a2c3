package main

import (
	"fmt"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	ungram "github.com/b4fun/ungram-go"
	"github.com/b4fun/ungram-go/sets"
	"github.com/b4fun/ungram-go/types"
)

var (
	app = kingpin.New("ungram", "Compute FIRST and FOLLOW sets for Ungrammar files.")

	lexCmd  = app.Command("lex", "Print the token stream of a grammar file.")
	lexPath = lexCmd.Arg("file", "Path to the .ungram file.").Required().String()

	treeCmd  = app.Command("tree", "Print the combinator tree of every rule.")
	treePath = treeCmd.Arg("file", "Path to the .ungram file.").Required().String()

	parseCmd  = app.Command("parse", "Parse a grammar file and print its rules.")
	parsePath = parseCmd.Arg("file", "Path to the .ungram file.").Required().String()

	firstCmd  = app.Command("first", "Print FIRST sets.")
	firstPath = firstCmd.Arg("file", "Path to the .ungram file.").Required().String()
	firstRule = firstCmd.Arg("rule", "Restrict output to one rule.").String()

	followCmd    = app.Command("follow", "Print FOLLOW sets.")
	followPath   = followCmd.Arg("file", "Path to the .ungram file.").Required().String()
	followRule   = followCmd.Arg("rule", "Restrict output to one rule.").String()
	followStrict = followCmd.Flag("strict", "Do not count a repeated body as following itself.").Short('s').Bool()

	replCmd  = app.Command("repl", "Interactively query FIRST and FOLLOW sets.")
	replPath = replCmd.Arg("file", "Path to the .ungram file.").Required().String()
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case lexCmd.FullCommand():
		runLex(*lexPath)
	case treeCmd.FullCommand():
		runTree(*treePath)
	case parseCmd.FullCommand():
		runParse(*parsePath)
	case firstCmd.FullCommand():
		runFirst(*firstPath, *firstRule)
	case followCmd.FullCommand():
		runFollow(*followPath, *followRule, *followStrict)
	case replCmd.FullCommand():
		runRepl(*replPath)
	}
}

func readSource(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(raw), nil
}

func loadGrammar(path string) (*types.Grammar, error) {
	source, err := readSource(path)
	if err != nil {
		return nil, err
	}

	grammar, err := ungram.Parse(source)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return grammar, nil
}

func runLex(path string) {
	source, err := readSource(path)
	kingpin.FatalIfError(err, "")

	tokens, err := ungram.Lex(source)
	kingpin.FatalIfError(err, "lex %s", path)

	for _, token := range tokens {
		fmt.Printf("%s %s %q\n", token.Kind, token.Span, token.Text(source))
	}
}

func runTree(path string) {
	grammar, err := loadGrammar(path)
	kingpin.FatalIfError(err, "")

	fmt.Print(ungram.DumpGrammarTree(grammar))
}

func runParse(path string) {
	grammar, err := loadGrammar(path)
	kingpin.FatalIfError(err, "")

	for _, name := range grammar.RuleNames() {
		body, _ := grammar.Body(name)
		fmt.Printf("%s = %s\n", name, body)
	}
}

func runFirst(path string, rule string) {
	grammar, err := loadGrammar(path)
	kingpin.FatalIfError(err, "")

	table := sets.First(grammar)
	printTable(grammar, table, rule)
}

func runFollow(path string, rule string, strict bool) {
	grammar, err := loadGrammar(path)
	kingpin.FatalIfError(err, "")

	firstTable := sets.First(grammar)
	table := sets.Follow(grammar, firstTable, sets.FollowStrict(strict))
	printTable(grammar, table, rule)
}

func printTable(grammar *types.Grammar, table sets.Table, rule string) {
	if rule == "" {
		fmt.Print(table.Format(grammar))
		return
	}

	set, ok := table[rule]
	if !ok {
		kingpin.Fatalf("no such rule %q", rule)
	}
	fmt.Println(set)
}

func runRepl(path string) {
	grammar, err := loadGrammar(path)
	kingpin.FatalIfError(err, "")

	firstTable := sets.First(grammar)
	followTable := sets.Follow(grammar, firstTable)

	commands := []prompt.Suggest{
		{Text: "first", Description: "FIRST set of a rule"},
		{Text: "follow", Description: "FOLLOW set of a rule"},
		{Text: "rules", Description: "List rule names"},
		{Text: "exit", Description: "Leave the repl"},
	}

	completer := func(d prompt.Document) []prompt.Suggest {
		if !strings.Contains(d.TextBeforeCursor(), " ") {
			return prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
		}

		suggests := make([]prompt.Suggest, 0, grammar.Len())
		for _, name := range grammar.RuleNames() {
			suggests = append(suggests, prompt.Suggest{Text: name})
		}
		return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), true)
	}

	executor := func(line string) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return
		}

		switch fields[0] {
		case "exit", "quit":
			os.Exit(0)
		case "rules":
			for _, name := range grammar.RuleNames() {
				fmt.Println(name)
			}
		case "first", "follow":
			if len(fields) != 2 {
				fmt.Fprintf(os.Stderr, "usage: %s <rule>\n", fields[0])
				return
			}

			table := firstTable
			if fields[0] == "follow" {
				table = followTable
			}
			set, ok := table[fields[1]]
			if !ok {
				fmt.Fprintf(os.Stderr, "no such rule %q\n", fields[1])
				return
			}
			fmt.Println(set)
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", fields[0])
		}
	}

	p := prompt.New(
		executor,
		completer,
		prompt.OptionPrefix("> "),
		prompt.OptionTitle("ungram"),
	)
	p.Run()
}
