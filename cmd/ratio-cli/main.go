package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/symbolica/ratio/pkg/ratio"
	"github.com/symbolica/ratio/pkg/ratio/ast"
	"github.com/symbolica/ratio/pkg/ratio/config"
	"github.com/symbolica/ratio/pkg/ratio/expr"
	"github.com/symbolica/ratio/pkg/ratio/store"
	"github.com/symbolica/ratio/pkg/ratio/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "System definition YAML (optional)")
		dbPath     = flag.String("db", "", "SQLite fact store (optional)")
		query      = flag.String("query", "", "One-shot probe (non-interactive mode)")
		rounds     = flag.Int("rounds", 0, "Saturation rounds (0 = configured default)")
	)
	flag.Parse()

	ctx := context.Background()

	sys, st, maxRounds, cleanup, err := buildSystem(ctx, *configPath, *dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()
	if *rounds > 0 {
		maxRounds = *rounds
	}

	// One-shot probe mode
	if *query != "" {
		probe, err := expr.Parse(*query)
		if err != nil {
			log.Fatal(err)
		}
		for _, derived := range sys.Infer(probe) {
			fmt.Println(derived)
		}
		return
	}

	// Interactive mode
	fmt.Println("===========================================")
	fmt.Printf("  ratio — %s\n", sys.Name())
	if sys.Description() != "" {
		fmt.Printf("  %s\n", sys.Description())
	}
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Commands: fact, infer, saturate, analyze, optimize, facts, vars, help")
	fmt.Println("Ctrl+D to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg := splitCommand(line)
		if err := execute(ctx, sys, st, maxRounds, cmd, arg); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func buildSystem(ctx context.Context, configPath, dbPath string) (*ratio.System, store.Store, int, func(), error) {
	opts := ratio.Options{Name: "ratio"}
	maxRounds := 3

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, 0, nil, err
		}
		maxRounds = cfg.Rounds()
		if dbPath == "" {
			sys, err := cfg.Build()
			return sys, nil, maxRounds, func() {}, err
		}
		// Config facts plus the persisted ledger.
		built, err := cfg.Build()
		if err != nil {
			return nil, nil, 0, nil, err
		}
		opts = ratio.Options{
			Name:        built.Name(),
			Description: built.Description(),
			Rules:       built.Rules(),
			Facts:       built.Facts(),
		}
	}

	if dbPath == "" {
		sys, err := ratio.New(opts)
		return sys, nil, maxRounds, func() {}, err
	}

	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, 0, nil, err
	}
	sys, err := ratio.Restore(ctx, st, opts)
	if err != nil {
		st.Close()
		return nil, nil, 0, nil, err
	}
	cleanup := func() {
		if err := st.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}
	return sys, st, maxRounds, cleanup, nil
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func execute(ctx context.Context, sys *ratio.System, st store.Store, maxRounds int, cmd, arg string) error {
	switch cmd {
	case "fact":
		f, err := expr.Parse(arg)
		if err != nil {
			return err
		}
		sys.AddFact(f)
		if st != nil {
			if err := st.SaveFact(ctx, store.Fact{Expr: f.String(), Source: sys.Name()}); err != nil {
				return err
			}
		}
		fmt.Printf("added %s\n", f)

	case "infer":
		probe, err := expr.Parse(arg)
		if err != nil {
			return err
		}
		out := sys.Infer(probe)
		if len(out) == 0 {
			fmt.Println("no derivations")
		}
		for _, derived := range out {
			fmt.Println(derived)
		}

	case "saturate":
		out := sys.SaturateN(maxRounds)
		if len(out) == 0 {
			fmt.Println("no new facts")
		}
		for _, derived := range out {
			fmt.Println(derived)
		}

	case "analyze":
		e, err := expr.Parse(arg)
		if err != nil {
			return err
		}
		rep := ast.Analyze(e)
		fmt.Printf("depth:      %d\n", rep.Depth)
		fmt.Printf("complexity: %d\n", rep.Complexity)
		fmt.Printf("variables:  %s\n", strings.Join(rep.Variables, ", "))
		fmt.Printf("operators:  %s\n", strings.Join(rep.Operators, ", "))
		fmt.Printf("patterns:   %d\n", len(rep.Patterns))
		for _, p := range rep.Patterns {
			fmt.Printf("  %s\n", p)
		}
		for _, s := range rep.Symmetries {
			fmt.Printf("symmetry:   operands %d and %d (%.2f)\n", s.I, s.J, s.Score)
		}

	case "optimize":
		e, err := expr.Parse(arg)
		if err != nil {
			return err
		}
		fmt.Println(ast.Optimize(e))

	case "facts":
		for i, f := range sys.Facts() {
			fmt.Printf("%3d  %s\n", i, f)
		}

	case "vars":
		for _, v := range sys.Graph().Variables() {
			fmt.Printf("%s: %d facts\n", v, len(sys.Graph().FactsMentioning(v)))
		}

	case "help":
		fmt.Println("fact <expr>      add a fact to the knowledge base")
		fmt.Println("infer <expr>     apply every rule to a probe")
		fmt.Println("saturate         forward-chain to saturation")
		fmt.Println("analyze <expr>   structural analysis of a tree")
		fmt.Println("optimize <expr>  simplify a tree")
		fmt.Println("facts            list the knowledge base")
		fmt.Println("vars             list the reasoning graph")

	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}
