package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	addr string
}

// NewRootCmd builds the payctl command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "payctl",
		Short:         "payctl - submit scheme payments to the payment service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.addr, "addr", "localhost:50051", "payment service gRPC address")

	root.AddCommand(newPayCmd(opts))
	return root
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
