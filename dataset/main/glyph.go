package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/sw965/glyph/dataset"
)

var version = "dev"

type summaryOptions struct {
	config  string
	seed    int64
	classes int
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "glyph",
		Short:         "Load the famous48 x/y/z face dataset and split it into train/test sets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newSummaryCmd(), newVersionCmd())
	return rootCmd
}

func newSummaryCmd() *cobra.Command {
	opts := &summaryOptions{}
	cmd := &cobra.Command{
		Use:   "summary <dir>",
		Short: "Load a dataset directory and print split sizes, class counts and pixel range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "config file path (yaml)")
	cmd.Flags().Int64Var(&opts.seed, "seed", dataset.DefaultSeed, "random seed for the train/test split")
	cmd.Flags().IntVar(&opts.classes, "classes", dataset.DefaultClasses, "number of classes")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func loadConfig(cmd *cobra.Command, opts *summaryOptions, dir string) (dataset.Config, error) {
	cfg := dataset.DefaultConfig()
	if opts.config != "" {
		var err error
		cfg, err = dataset.LoadConfig(opts.config)
		if err != nil {
			return dataset.Config{}, err
		}
	}

	cfg.Dir = dir
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	if cmd.Flags().Changed("classes") {
		cfg.Classes = opts.classes
	}
	return cfg, nil
}

func runSummary(cmd *cobra.Command, opts *summaryOptions, dir string) error {
	cfg, err := loadConfig(cmd, opts, dir)
	if err != nil {
		return err
	}

	log.Printf("読み込み開始: %s %v", cfg.Dir, cfg.Files)
	ds, err := dataset.LoadWithConfig(cfg)
	if err != nil {
		return err
	}
	log.Printf("読み込み完了: Train[%d], Test[%d]", ds.TrainImages.Count, ds.TestImages.Count)

	printSummary(cmd.OutOrStdout(), ds)
	return nil
}

func printSummary(w io.Writer, ds dataset.Dataset) {
	fmt.Fprintf(w, "image size: %dx%d\n", ds.TrainImages.Rows, ds.TrainImages.Cols)
	fmt.Fprintf(w, "train: %d\n", ds.TrainImages.Count)
	fmt.Fprintf(w, "test:  %d\n", ds.TestImages.Count)

	trainCounts := dataset.ClassCounts(ds.TrainLabels)
	testCounts := dataset.ClassCounts(ds.TestLabels)
	for c := range trainCounts {
		fmt.Fprintf(w, "class %d: train=%d test=%d\n", c, trainCounts[c], testCounts[c])
	}

	lo, hi := ds.TrainImages.MinMax()
	fmt.Fprintf(w, "train pixel range: [%v, %v]\n", lo, hi)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("失敗: %v", err)
	}
}
