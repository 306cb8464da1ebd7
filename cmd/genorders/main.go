// Command genorders writes a random answer script for the order desk.
// Piping the script into autozone adds products, sets an appointment and
// exits with a written summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"autozone/internal/catalog"
)

func main() {
	var lines int
	var outputFile string
	var seed int64
	flag.IntVar(&lines, "lines", 3, "number of product additions")
	flag.StringVar(&outputFile, "output", "session.txt", "output file, - for stdout")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	var w io.Writer = os.Stdout
	if outputFile != "-" {
		f, err := os.Create(outputFile)
		if err != nil {
			log.Fatal().Err(err).Str("output", outputFile).Msg("create file")
		}
		defer f.Close()
		w = f
	}
	rng := rand.New(rand.NewSource(seed))
	if err := generateScript(w, rng, catalog.Default(), lines, time.Now()); err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}
}

func generateScript(w io.Writer, rng *rand.Rand, cat *catalog.Catalog, lines int, from time.Time) error {
	if lines < 1 {
		return fmt.Errorf("lines must be at least 1, got %d", lines)
	}
	var answers []string
	answers = append(answers, "1")
	for i := 0; i < lines; i++ {
		answers = append(answers,
			fmt.Sprint(1+rng.Intn(cat.Size())),
			fmt.Sprint(1+rng.Intn(5)),
		)
		if i < lines-1 {
			answers = append(answers, "yes")
		} else {
			answers = append(answers, "no")
		}
	}

	day := from.AddDate(0, 0, 1+rng.Intn(30))
	meridiem := "AM"
	if rng.Intn(2) == 1 {
		meridiem = "PM"
	}
	slot := fmt.Sprintf("%d:%02d %s", 1+rng.Intn(12), 15*rng.Intn(4), meridiem)
	answers = append(answers, "2", day.Format("01/02/2006"), slot, "yes", "3")

	if _, err := io.WriteString(w, strings.Join(answers, "\n")+"\n"); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}
