package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/worksheets/internal/config"
	"svw.info/worksheets/internal/domain"
	"svw.info/worksheets/internal/kenken"
	"svw.info/worksheets/internal/symbolgrid"
)

func commandGenerate() *cobra.Command {
	var (
		kind   string
		preset string
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single puzzle and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, kind, preset, seed)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "symbol-grid", "puzzle kind: symbol-grid|kenken")
	cmd.Flags().StringVar(&preset, "preset", "Medium", "difficulty preset name")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	return cmd
}

func generate(cmd *cobra.Command, kind, preset string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctx := context.Background()

	switch kind {
	case "symbol-grid":
		p, ok := cfg.SymbolPreset(preset)
		if !ok {
			return fmt.Errorf("unknown symbol-grid preset %q", preset)
		}
		puz, st, err := symbolgrid.NewGenerator().Generate(ctx, seed, p.Params)
		if err != nil {
			return err
		}
		printSymbolPuzzle(cmd, puz)
		cmd.Printf("seed=%d attempts=%d dur=%s\n", seed, st.Attempts, st.Duration.Round(time.Millisecond))
	case "kenken":
		p, ok := cfg.KenKenPreset(preset)
		if !ok {
			return fmt.Errorf("unknown kenken preset %q", preset)
		}
		solver := kenken.NewSolver()
		puz, st, err := kenken.NewGenerator(solver).Generate(ctx, seed, p.Spec)
		if err != nil {
			return err
		}
		printKenKenPuzzle(cmd, puz)
		cmd.Printf("seed=%d attempts=%d nodes=%d dur=%s\n", seed, st.Attempts, st.Nodes, st.Duration.Round(time.Millisecond))
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
	return nil
}

func printSymbolPuzzle(cmd *cobra.Command, p *domain.SymbolPuzzle) {
	rowHints := make(map[int]int)
	colHints := make(map[int]int)
	for _, h := range p.Hints {
		if h.Axis == domain.AxisRow {
			rowHints[h.Index] = h.Total
		} else {
			colHints[h.Index] = h.Total
		}
	}

	for r, row := range p.Grid {
		var b strings.Builder
		for _, sym := range row {
			b.WriteString(config.Symbols[sym])
			b.WriteByte(' ')
		}
		if total, ok := rowHints[r]; ok {
			fmt.Fprintf(&b, "| %d", total)
		}
		cmd.Println(b.String())
	}
	var b strings.Builder
	for c := 0; c < p.GridSize(); c++ {
		if total, ok := colHints[c]; ok {
			fmt.Fprintf(&b, "%d ", total)
		} else {
			b.WriteString("? ")
		}
	}
	cmd.Println(b.String())
	for s, v := range p.SymbolValues {
		cmd.Printf("%s = %d\n", config.Symbols[s], v)
	}
}

func printKenKenPuzzle(cmd *cobra.Command, p *domain.KenKenPuzzle) {
	for i, cage := range p.Cages {
		var cells []string
		for _, cell := range cage.Cells {
			cells = append(cells, fmt.Sprintf("(%d,%d)", cell.Row, cell.Col))
		}
		cmd.Printf("cage %d: %d%s %s\n", i, cage.Target, cage.Operation, strings.Join(cells, " "))
	}
	cmd.Println("solution:")
	for _, row := range p.Solution {
		var b strings.Builder
		for _, v := range row {
			fmt.Fprintf(&b, "%d ", v)
		}
		cmd.Println(b.String())
	}
}
