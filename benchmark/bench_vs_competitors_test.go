package benchmark_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-sift/sift"
)

// Benchmark a simple invocation with one valued option, one flag and one
// positional. The competitors route through full flag parsing; sift only
// classifies. The gap is the price of schemas.

func BenchmarkSimpleArgs_GoSift(b *testing.B) {
	p := sift.New()
	p.AddParam("port")

	args := []string{"--port", "9000", "--verbose", "input.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Parse(args)
		if !p.HasFlag("verbose") || !p.Param("port").OK() {
			b.Fatal("classification went wrong")
		}
	}
}

func BenchmarkSimpleArgs_Cobra(b *testing.B) {
	args := []string{"--port", "9000", "--verbose", "input.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().IntP("port", "p", 8080, "Server port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkSimpleArgs_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose", "input.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark many options (realistic CLI tool scenario).

func BenchmarkManyOptions_GoSift(b *testing.B) {
	p := sift.New()
	p.AddParams("flag1", "flag2", "flag3", "flag4", "flag5", "port")

	args := []string{
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Parse(args)
		if !p.HasFlag("debug") || !p.Param("flag3").OK() {
			b.Fatal("classification went wrong")
		}
	}
}

func BenchmarkManyOptions_Cobra(b *testing.B) {
	args := []string{
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().String("flag1", "value1", "Flag 1")
		cmd.Flags().String("flag2", "value2", "Flag 2")
		cmd.Flags().String("flag3", "value3", "Flag 3")
		cmd.Flags().String("flag4", "value4", "Flag 4")
		cmd.Flags().String("flag5", "value5", "Flag 5")
		cmd.Flags().IntP("port", "p", 8080, "Port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose")
		cmd.Flags().Bool("debug", false, "Debug")
		cmd.Flags().Bool("quiet", false, "Quiet")
		cmd.Flags().Bool("force", false, "Force")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkManyOptions_Urfave(b *testing.B) {
	args := []string{
		"bench",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "flag1", Value: "value1", Usage: "Flag 1"},
				&cli.StringFlag{Name: "flag2", Value: "value2", Usage: "Flag 2"},
				&cli.StringFlag{Name: "flag3", Value: "value3", Usage: "Flag 3"},
				&cli.StringFlag{Name: "flag4", Value: "value4", Usage: "Flag 4"},
				&cli.StringFlag{Name: "flag5", Value: "value5", Usage: "Flag 5"},
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose"},
				&cli.BoolFlag{Name: "debug", Usage: "Debug"},
				&cli.BoolFlag{Name: "quiet", Usage: "Quiet"},
				&cli.BoolFlag{Name: "force", Usage: "Force"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark repeated values under one name.

func BenchmarkRepeatedValues_GoSift(b *testing.B) {
	p := sift.New()
	p.AddParam("input")

	args := []string{"--input", "a.txt", "--input", "b.txt", "--input", "c.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Parse(args)
		if p.ParamCount("input") != 3 {
			b.Fatal("values lost")
		}
	}
}

func BenchmarkRepeatedValues_Cobra(b *testing.B) {
	args := []string{"--input", "a.txt", "--input", "b.txt", "--input", "c.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().StringArray("input", nil, "Input files")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkRepeatedValues_Urfave(b *testing.B) {
	args := []string{"bench", "--input", "a.txt", "--input", "b.txt", "--input", "c.txt"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "input", Usage: "Input files"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
