// Command huffcodes builds the Huffman code for a fixed demonstration
// table and prints each symbol's bit pattern.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/bitpath/huffman"
)

func main() {
	var dump = pflag.Bool("dump", false, "print the tree debug dump to stderr")
	var quiet = pflag.Bool("quiet", false, "suppress the summary log line")
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	// The classic textbook frequency table.
	symbols := []huffman.Symbol{'a', 'b', 'c', 'd', 'e', 'f'}
	frequencies := []uint32{5, 9, 12, 13, 16, 45}

	tree, err := huffman.New(symbols, frequencies)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build Huffman tree")
	}

	log.Info().
		Int("symbols", tree.NumLeaves()).
		Uint32("totalWeight", lo.Sum(frequencies)).
		Uint64("weightedLength", tree.WeightedLength()).
		Msg("built Huffman tree")

	if *dump {
		_, _ = tree.Dump(os.Stderr)
	}

	for _, sc := range tree.Codes() {
		fmt.Printf("%c -> %s\n", rune(sc.Symbol), sc.Code)
	}
}
