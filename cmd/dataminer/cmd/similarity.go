package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/expki/go-dataminer/compute"
	"github.com/expki/go-dataminer/logger"
	"github.com/spf13/cobra"
)

type similarityOptions struct {
	topN            int
	withMean        bool
	withStd         bool
	exactTopN       bool
	showTransformed bool
	format          string
	precision       int
}

func newSimilarityCmd(g *globals) *cobra.Command {
	var opts similarityOptions

	cmd := &cobra.Command{
		Use:   "similarity <matrix.csv|->",
		Short: "Pairwise cosine similarity of matrix rows",
		Long: `Reads a headerless numeric CSV, then for every row:
  1. subtracts the row mean (--with-mean)
  2. divides by the row std (--with-std)
  3. keeps the --top-n largest values and zeroes the rest
and prints the N×N cosine similarity of the rows.

Defaults come from the "similarity" section of the config file.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			// config values apply unless the flag was given explicitly
			flags := cmd.Flags()
			if !flags.Changed("top-n") {
				opts.topN = g.cfg.Similarity.TopN
			}
			if !flags.Changed("with-mean") {
				opts.withMean = g.cfg.Similarity.WithMean
			}
			if !flags.Changed("with-std") {
				opts.withStd = g.cfg.Similarity.WithStd
			}
			if !flags.Changed("exact-top-n") {
				opts.exactTopN = g.cfg.Similarity.ExactTopN
			}
			if !flags.Changed("precision") {
				opts.precision = g.cfg.Similarity.Precision
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimilarity(cmd, args[0], opts)
		},
	}

	defaults := compute.DefaultOptions()
	cmd.Flags().IntVarP(&opts.topN, "top-n", "n", defaults.TopN, "Values kept per row")
	cmd.Flags().BoolVar(&opts.withMean, "with-mean", defaults.WithMean, "Subtract each row's mean")
	cmd.Flags().BoolVar(&opts.withStd, "with-std", defaults.WithStd, "Divide each row by its std")
	cmd.Flags().BoolVar(&opts.exactTopN, "exact-top-n", false, "Keep exactly top-n values per row, breaking ties by column")
	cmd.Flags().BoolVar(&opts.showTransformed, "show-transformed", false, "Also print the matrix after the row transforms")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, csv, json")
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", 4, "Decimals printed (negative for shortest exact)")

	return cmd
}

func runSimilarity(cmd *cobra.Command, path string, opts similarityOptions) error {
	x, err := readMatrix(cmd, path)
	if err != nil {
		return err
	}
	rows, cols := x.Dims()
	logger.Sugar().Debugf("read %dx%d matrix from %s", rows, cols, path)

	pipeline := compute.Options{
		TopN:      opts.topN,
		WithMean:  opts.withMean,
		WithStd:   opts.withStd,
		ExactTopN: opts.exactTopN,
	}
	start := time.Now()
	transformed, err := compute.Transform(x, pipeline)
	if err != nil {
		return err
	}
	S := compute.CosineSimilarity(transformed)
	logger.Sugar().Infof("similarity of %d rows computed in %s", rows, time.Since(start))

	out := cmd.OutOrStdout()
	if opts.showTransformed {
		if err := writeMatrix(out, "transformed", transformed, opts.format, opts.precision); err != nil {
			return err
		}
	}
	return writeMatrix(out, "similarity", S, opts.format, opts.precision)
}

func readMatrix(cmd *cobra.Command, path string) (compute.Matrix, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return compute.Matrix{}, err
		}
		defer file.Close()
		r = file
	}
	m, err := compute.ReadCSV(r)
	if err != nil {
		return compute.Matrix{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func writeMatrix(w io.Writer, title string, m compute.Matrix, format string, precision int) error {
	switch format {
	case "csv":
		return compute.WriteCSV(w, m, precision)
	case "json":
		enc := json.NewEncoder(w)
		return enc.Encode(map[string]compute.Matrix{title: m})
	case "text", "":
		rows, _ := m.Dims()
		fmt.Fprintf(w, "%s:\n", title)
		for i := 0; i < rows; i++ {
			cells := make([]string, 0, len(m.Row(i)))
			for _, v := range m.Row(i) {
				cells = append(cells, strconv.FormatFloat(v, 'f', precision, 64))
			}
			fmt.Fprintf(w, "  [%s]\n", strings.Join(cells, " "))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
