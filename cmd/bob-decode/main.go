package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/christiaansc/Codec-BoBAssistant/internal/message"
	"github.com/christiaansc/Codec-BoBAssistant/pkg/bob"
)

var (
	rootCmd = &cobra.Command{
		Use:   "bob-decode [hex]",
		Short: "Decode BoB Assistant vibration sensor uplinks",
		Long: "bob-decode decodes BoB Assistant uplinks. Without an argument it reads " +
			"one payload per line from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := decodeOptions()
			if len(args) == 0 {
				return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
			}
			return runDecode(cmd.OutOrStdout(), opts, args[0])
		},
	}

	kindsCmd = &cobra.Command{
		Use:   "kinds",
		Short: "List message kinds and sensor variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printKinds(cmd.OutOrStdout())
		},
	}

	verbose    bool
	configPath string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log decoding anomalies")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.AddCommand(kindsCmd, serveCmd, bridgeCmd)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.Fatal(err)
	}
}

func decodeOptions() bob.Options {
	if !verbose {
		return bob.Options{}
	}
	return bob.Options{Observer: bob.LogObserver(logrus.StandardLogger())}
}

func runInteractive(in io.Reader, out io.Writer, opts bob.Options) error {
	scanner := bufio.NewScanner(in)
	logrus.Info("bob-decode interactive mode. Paste a hex payload and press Enter (Ctrl+D to exit).")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(out, opts, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runDecode(out io.Writer, opts bob.Options, hex string) error {
	result, err := bob.DecodeWithOptions(strings.TrimSpace(hex), opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result.String())
	return nil
}

func printKinds(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tBYTES\tMPU6500\tKX\tFIELDS")
	for _, def := range message.Definitions() {
		fmt.Fprintf(tw, "%s\t%d\t%d (%q)\t%d (%q)\t%d\n",
			def.Name(), def.ByteLength,
			def.Signification[message.MPU6500], def.Signification[message.MPU6500],
			def.Signification[message.KX], def.Signification[message.KX],
			len(def.Fields))
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SENSOR\tLF SAMPLING (Hz)\tHF SAMPLING (Hz)")
	for _, v := range message.Variants {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", v, v.LowFrequencySamplingHz(), v.HighFrequencySamplingHz())
	}
	return tw.Flush()
}
