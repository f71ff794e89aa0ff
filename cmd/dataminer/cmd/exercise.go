package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/expki/go-dataminer/exercises"
	"github.com/spf13/cobra"
)

func newExerciseCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Array warm-up exercises",
	}

	var size int
	board := &cobra.Command{
		Use:   "board",
		Short: "Print an n×n checkerboard of ones and zeros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := exercises.Checkerboard(size)
			if err != nil {
				return err
			}
			for _, row := range board {
				fmt.Fprintln(cmd.OutOrStdout(), row)
			}
			return nil
		},
	}
	board.Flags().IntVarP(&size, "size", "n", 7, "Board size")

	var (
		length int
		count  int
		seed   uint64
	)
	outliers := &cobra.Command{
		Use:   "zero-outliers",
		Short: "Draw a random integer vector and zero its largest magnitudes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			random := rand.New(rand.NewPCG(seed, seed>>1|1))
			vector, err := exercises.RandomVector(random, length, -100, 100)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "before:", vector)
			fmt.Fprintln(cmd.OutOrStdout(), "after: ", exercises.ZeroLargestMagnitude(vector, count))
			return nil
		},
	}
	outliers.Flags().IntVarP(&length, "length", "n", 100, "Vector length")
	outliers.Flags().IntVarP(&count, "count", "k", 3, "Largest magnitudes to zero")
	outliers.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: time based)")

	var snakeSize int
	snake := &cobra.Command{
		Use:   "snake",
		Short: "Print 1..n² running down the columns of an n×n grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := exercises.TransposedRange(snakeSize)
			if err != nil {
				return err
			}
			for _, row := range grid {
				fmt.Fprintln(cmd.OutOrStdout(), row)
			}
			return nil
		},
	}
	snake.Flags().IntVarP(&snakeSize, "size", "n", 5, "Grid size")

	var vectorPath string
	euclidean := &cobra.Command{
		Use:   "euclidean <matrix.csv>",
		Short: "Distance from every matrix row to a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRowsToVector(cmd, args[0], vectorPath, exercises.EuclideanDistances)
		},
	}
	euclidean.Flags().StringVarP(&vectorPath, "vector", "v", "", "CSV file holding the vector as a single row")
	euclidean.MarkFlagRequired("vector")

	cosine := &cobra.Command{
		Use:   "cosine <matrix.csv>",
		Short: "Cosine similarity of every matrix row to a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRowsToVector(cmd, args[0], vectorPath, exercises.CosineToRows)
		},
	}
	cosine.Flags().StringVarP(&vectorPath, "vector", "v", "", "CSV file holding the vector as a single row")
	cosine.MarkFlagRequired("vector")

	cmd.AddCommand(board, outliers, snake, euclidean, cosine)
	return cmd
}

func runRowsToVector(cmd *cobra.Command, matrixPath, vectorPath string, metric func([][]float64, []float64) ([]float64, error)) error {
	m, err := readMatrix(cmd, matrixPath)
	if err != nil {
		return err
	}
	v, err := readMatrix(cmd, vectorPath)
	if err != nil {
		return err
	}
	if rows, _ := v.Dims(); rows != 1 {
		return fmt.Errorf("%s: vector file must hold exactly one row, found %d", vectorPath, rows)
	}
	values, err := metric(m.Slices(), v.Row(0))
	if err != nil {
		return err
	}
	for i, value := range values {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.6f\n", i, value)
	}
	return nil
}
